package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(191) NOT NULL,
		email VARCHAR(191) NOT NULL,
		phone VARCHAR(32) NULL,
		image VARCHAR(512) NULL,
		email_verified TINYINT(1) NOT NULL DEFAULT 0,
		role VARCHAR(16) NOT NULL DEFAULT 'user',
		provider VARCHAR(32) NULL,
		password_hash VARCHAR(255) NULL,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS products (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(191) NOT NULL,
		location VARCHAR(191) NOT NULL,
		price DECIMAL(12,2) NOT NULL,
		original_price DECIMAL(12,2) NOT NULL DEFAULT 0,
		rating DECIMAL(2,1) NOT NULL DEFAULT 0,
		reviews INT NOT NULL DEFAULT 0,
		duration VARCHAR(64) NULL,
		category VARCHAR(32) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
		trip_type VARCHAR(16) NOT NULL,
		image VARCHAR(512) NULL,
		featured TINYINT(1) NOT NULL DEFAULT 0,
		discount INT NOT NULL DEFAULT 0,
		highlights JSON NULL,
		group_size VARCHAR(64) NULL,
		difficulty VARCHAR(16) NOT NULL,
		available_dates JSON NULL,
		inclusions JSON NULL,
		exclusions JSON NULL,
		itinerary JSON NULL,
		is_community_trip TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL,
		KEY idx_products_category (category),
		KEY idx_products_featured (featured)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		total_amount DECIMAL(12,2) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		booking_date DATETIME(3) NOT NULL,
		payment_method VARCHAR(16) NOT NULL,
		payment_status VARCHAR(16) NOT NULL DEFAULT 'unpaid',
		contact_name VARCHAR(191) NOT NULL,
		contact_email VARCHAR(191) NOT NULL,
		contact_phone VARCHAR(32) NULL,
		special_requests TEXT NULL,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL,
		KEY idx_orders_user_booking (user_id, booking_date),
		KEY idx_orders_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS order_items (
		order_id CHAR(36) NOT NULL,
		position INT NOT NULL,
		product_id CHAR(36) NOT NULL,
		name VARCHAR(191) NOT NULL,
		location VARCHAR(191) NULL,
		quantity INT NOT NULL,
		price DECIMAL(12,2) NOT NULL,
		selected_date DATETIME(3) NULL,
		PRIMARY KEY (order_id, position),
		CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS flight_bookings (
		id CHAR(36) NOT NULL PRIMARY KEY,
		flight_id VARCHAR(64) NOT NULL,
		airline VARCHAR(128) NOT NULL,
		flight_number VARCHAR(32) NOT NULL,
		departure JSON NOT NULL,
		arrival JSON NOT NULL,
		passengers JSON NOT NULL,
		total_amount DECIMAL(12,2) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		payment_id VARCHAR(128) NULL,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL,
		KEY idx_flight_bookings_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS payments (
		id CHAR(36) NOT NULL PRIMARY KEY,
		razorpay_order_id VARCHAR(64) NOT NULL,
		razorpay_payment_id VARCHAR(64) NULL,
		amount DECIMAL(12,2) NOT NULL,
		currency VARCHAR(8) NOT NULL DEFAULT 'INR',
		status VARCHAR(16) NOT NULL DEFAULT 'created',
		user_name VARCHAR(191) NULL,
		user_email VARCHAR(191) NULL,
		user_phone VARCHAR(32) NULL,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL,
		KEY idx_payments_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS testimonials (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(191) NOT NULL,
		location VARCHAR(191) NULL,
		rating TINYINT NOT NULL,
		title VARCHAR(191) NULL,
		comment TEXT NOT NULL,
		image VARCHAR(512) NULL,
		destination VARCHAR(191) NULL,
		date VARCHAR(32) NULL,
		verified TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS blogs (
		id CHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		excerpt TEXT NULL,
		image VARCHAR(512) NULL,
		author VARCHAR(191) NULL,
		read_time VARCHAR(32) NULL,
		category VARCHAR(64) NULL,
		featured TINYINT(1) NOT NULL DEFAULT 0,
		content JSON NOT NULL,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL,
		UNIQUE KEY uq_blogs_slug (slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS subscribers (
		id CHAR(36) NOT NULL PRIMARY KEY,
		email VARCHAR(191) NOT NULL,
		created_at DATETIME(3) NOT NULL,
		UNIQUE KEY uq_subscribers_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS offers (
		id CHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(191) NOT NULL,
		subtitle VARCHAR(255) NULL,
		discount DECIMAL(12,2) NOT NULL,
		type VARCHAR(16) NOT NULL,
		code VARCHAR(64) NOT NULL,
		valid_until DATETIME(3) NOT NULL,
		image VARCHAR(512) NULL,
		icon VARCHAR(64) NULL,
		color VARCHAR(32) NULL,
		description TEXT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NOT NULL,
		UNIQUE KEY uq_offers_code (code)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(191) NOT NULL,
		email VARCHAR(191) NOT NULL,
		phone VARCHAR(32) NULL,
		subject VARCHAR(255) NULL,
		message TEXT NOT NULL,
		travel_type VARCHAR(64) NULL,
		created_at DATETIME(3) NOT NULL,
		KEY idx_contacts_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates missing tables.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
