package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/opencampus/assist-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("assist")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS assist`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO assist").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.AssistanceRequest{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.User{}).
		AddUniqueIndex("users_unique_email", "email").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.AssistanceRequest{}).
		AddUniqueIndex("assistance_requests_unique_server_id", "server_id").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
