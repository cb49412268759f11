package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. It expects a MySQL
// instance on localhost:3306 with a database named 'beorn_test' and skips
// the test when none is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/beorn_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB removes all rows and closes the connection. Child tables
// first so foreign keys don't get in the way.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "MenuItems", "Restaurants", "Customers"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createCustomersTable := `
	CREATE TABLE IF NOT EXISTS Customers (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		phoneNumber VARCHAR(30) NOT NULL,
		address VARCHAR(255) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createRestaurantsTable := `
	CREATE TABLE IF NOT EXISTS Restaurants (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createMenuItemsTable := `
	CREATE TABLE IF NOT EXISTS MenuItems (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		restaurantId INT NOT NULL,
		name VARCHAR(100) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		isAvailable TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (restaurantId) REFERENCES Restaurants(id),
		INDEX idx_restaurant (restaurantId)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		customerId INT NOT NULL,
		restaurantId INT NOT NULL,
		totalPrice DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(50) NOT NULL DEFAULT 'Placed',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customerId) REFERENCES Customers(id),
		FOREIGN KEY (restaurantId) REFERENCES Restaurants(id),
		INDEX idx_customer (customerId)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		menuItemId INT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		unitPrice DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		FOREIGN KEY (menuItemId) REFERENCES MenuItems(id),
		INDEX idx_order (orderId),
		INDEX idx_menu_item (menuItemId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Customers", createCustomersTable},
		{"Restaurants", createRestaurantsTable},
		{"MenuItems", createMenuItemsTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Fatalf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// InsertCustomer seeds a customer row and returns its id.
func InsertCustomer(t *testing.T, db *sql.DB, name, email string) int {
	result, err := db.Exec(
		`INSERT INTO Customers (name, email, phoneNumber, address) VALUES (?, ?, '555-0100', '1 Test St')`,
		name, email,
	)
	if err != nil {
		t.Fatalf("failed to insert customer: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get customer id: %v", err)
	}
	return int(id)
}

// InsertRestaurant seeds a restaurant row and returns its id.
func InsertRestaurant(t *testing.T, db *sql.DB, name string) int {
	result, err := db.Exec(`INSERT INTO Restaurants (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("failed to insert restaurant: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get restaurant id: %v", err)
	}
	return int(id)
}

// InsertMenuItem seeds a menu item row and returns its id.
func InsertMenuItem(t *testing.T, db *sql.DB, restaurantID int, name, price string) int {
	result, err := db.Exec(
		`INSERT INTO MenuItems (restaurantId, name, price) VALUES (?, ?, ?)`,
		restaurantID, name, price,
	)
	if err != nil {
		t.Fatalf("failed to insert menu item: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get menu item id: %v", err)
	}
	return int(id)
}
