package cmd

import (
	"fmt"
	"log"

	paymentDatamodel "github.com/frahmantamala/payment-service/internal/core/datamodel/payment"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample payments for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM payments").Error; err != nil {
				log.Fatalf("failed to clear payments: %v", err)
			}
			fmt.Println("Cleared existing payments")
		}

		samples := []paymentDatamodel.Payment{
			{
				Amount:           decimal.NewFromFloat(149.90),
				PayerName:        "Ana Souza",
				CardNumber:       "4111111111111111",
				CardExpiry:       "12/27",
				CardSecurityCode: "123",
				Status:           paymentDatamodel.StatusCreated,
				PaymentMethodID:  1,
				OrderID:          1,
			},
			{
				Amount:           decimal.NewFromFloat(89.50),
				PayerName:        "Carlos Lima",
				CardNumber:       "5555555555554444",
				CardExpiry:       "06/26",
				CardSecurityCode: "456",
				Status:           paymentDatamodel.StatusConfirmed,
				PaymentMethodID:  2,
				OrderID:          2,
			},
			{
				Amount:           decimal.NewFromFloat(1250.00),
				PayerName:        "Beatriz Santos",
				CardNumber:       "378282246310005",
				CardExpiry:       "09/25",
				CardSecurityCode: "7890",
				Status:           paymentDatamodel.StatusConfirmedWithoutIntegration,
				PaymentMethodID:  1,
				OrderID:          3,
			},
		}

		for _, sample := range samples {
			var exists int64
			db.Model(&paymentDatamodel.Payment{}).Where("order_id = ?", sample.OrderID).Count(&exists)
			if exists > 0 {
				fmt.Printf("payment for order %d already exists, skipping\n", sample.OrderID)
				continue
			}
			if err := db.Create(&sample).Error; err != nil {
				log.Fatalf("failed to seed payment for order %d: %v", sample.OrderID, err)
			}
			fmt.Printf("Seeded payment %d for order %d (%s)\n", sample.ID, sample.OrderID, sample.Status)
		}

		fmt.Println("Seeding complete")
	},
}
