//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"strings"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

func TestTasksAPISuiteMySQL(t *testing.T) {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "taskmanager")+"_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true")

	adminDB, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		t.Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	defer func() { _ = adminDB.Close() }()

	_, err = adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}

	// Drop test database to keep local environment clean after integration runs.
	defer func() {
		if strings.HasSuffix(database, "_test") {
			_, _ = adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", database))
		}
	}()

	suite.Run(t, &TasksAPISuite{
		connect: func() (*sqlx.DB, error) {
			return sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, database, params))
		},
	})
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
