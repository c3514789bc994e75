package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/homeledger/homeledger/internal/core/events"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/expense"
	expensePostgres "github.com/homeledger/homeledger/internal/expense/postgres"
	"github.com/homeledger/homeledger/internal/income"
	incomePostgres "github.com/homeledger/homeledger/internal/income/postgres"
	"github.com/homeledger/homeledger/internal/siteconfig"
	siteconfigPostgres "github.com/homeledger/homeledger/internal/siteconfig/postgres"
	"github.com/homeledger/homeledger/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with default labels and sample records for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
		lg := logger.LoggerWrapper()

		gormDB, sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		if clearData {
			for _, table := range []string{"installments", "expenses", "income_entries", "projection_overrides"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		bus := events.NewEventBus(lg)

		configService := siteconfig.NewService(siteconfigPostgres.NewConfigRepository(gormDB), lg)
		if err := configService.SeedDefaults(); err != nil {
			log.Fatalf("failed to seed config defaults: %v", err)
		}
		fmt.Println("Seeded site config defaults")

		incomeService := income.NewService(incomePostgres.NewIncomeRepository(gormDB), bus, lg)
		expenseService := expense.NewService(expensePostgres.NewExpenseRepository(gormDB), bus, lg)

		seedIncome(incomeService, "person1", "Salary", "3500.00")
		seedIncome(incomeService, "person2", "Salary", "2800.00")
		seedIncome(incomeService, "allowance", "Meal allowance", "440.00")

		firstDue := time.Date(time.Now().Year(), time.Now().Month(), 15, 0, 0, 0, 0, time.UTC)
		count := 6
		if _, err := expenseService.CreateExpense(expense.CreateExpenseDTO{
			Name:              "Washing machine",
			Category:          "household",
			AmountCents:       int64(mustParse("1740.00")),
			Kind:              string(expense.KindInstallment),
			PaidBy:            "joint",
			TotalInstallments: &count,
			FirstDueDate:      &firstDue,
		}); err != nil {
			log.Fatalf("failed to seed installment expense: %v", err)
		}

		if _, err := expenseService.CreateExpense(expense.CreateExpenseDTO{
			Name:        "Rent",
			Category:    "housing",
			AmountCents: int64(mustParse("1500.00")),
			Kind:        string(expense.KindFixed),
			PaidBy:      "joint",
		}); err != nil {
			log.Fatalf("failed to seed fixed expense: %v", err)
		}

		fmt.Println("Seeded sample income and expenses")
	},
}

func seedIncome(svc *income.Service, person, name, amount string) {
	if _, err := svc.CreateIncome(income.CreateIncomeDTO{
		Person:      person,
		Name:        name,
		AmountCents: int64(mustParse(amount)),
	}); err != nil {
		log.Fatalf("failed to seed income %s/%s: %v", person, name, err)
	}
}

func mustParse(amount string) money.Cents {
	cents, err := money.ParseDecimal(amount)
	if err != nil {
		log.Fatalf("bad seed amount %q: %v", amount, err)
	}
	return cents
}
