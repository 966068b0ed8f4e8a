package main

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dhababook/restro-backend/internal/config"
	"github.com/dhababook/restro-backend/internal/models"
	"github.com/dhababook/restro-backend/pkg/mongodb"
)

// Imports a customer list from a CSV file into MongoDB.
// Expected columns: name, phone, totalOrders, creditBalance
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := config.GetEnv("MONGODB_DATABASE", "restro-backoffice")

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	imported, skipped, err := importCustomers(db, csvFilePath)
	if err != nil {
		log.Fatalf("Failed to import customers: %v", err)
	}

	log.Printf("Import finished: %d imported, %d skipped", imported, skipped)
}

func importCustomers(db *mongo.Database, path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return 0, 0, err
	}

	collection := db.Collection("customers")
	imported, skipped := 0, 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, skipped, err
		}

		if len(record) < 2 || record[0] == "" || record[1] == "" {
			skipped++
			continue
		}

		customer := models.Customer{
			Name:      record[0],
			Phone:     record[1],
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if len(record) > 2 {
			customer.TotalOrders, _ = strconv.Atoi(record[2])
		}
		if len(record) > 3 {
			customer.CreditBalance, _ = strconv.ParseFloat(record[3], 64)
		}

		if _, err := collection.InsertOne(context.Background(), customer); err != nil {
			log.Printf("Failed to insert customer %q: %v", customer.Name, err)
			skipped++
			continue
		}
		imported++
	}

	return imported, skipped, nil
}
