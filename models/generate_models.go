package models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Query helper generation:

1. Set the environment variable: GENERATE_MODELS=true
2. Run the application: go run .

The schema is migrated first, then gorm/gen writes typed query helpers for
every model into ./generated.
*/

// All lists the persisted models in dependency order.
func All() []interface{} {
	return []interface{}{
		&Type{},
		&Technology{},
		&Project{},
	}
}

// AutoMigrate creates or updates the tables, including the project_technology join table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func GenerateModels(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	verbose := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	migrateDB := db.Session(&gorm.Session{
		Logger:                 verbose,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	fmt.Println("Migrating models...")
	if err := AutoMigrate(migrateDB); err != nil {
		return err
	}
	fmt.Println("Database migration completed successfully!")

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(migrateDB)
	g.ApplyBasic(Type{}, Technology{}, Project{})
	g.Execute()

	fmt.Println("Model generation complete!")
	return nil
}
