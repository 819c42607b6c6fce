// Package repository реализует хранилище данных на основе PostgreSQL
// для ресторанов и пользователей. Документы хранятся строками с JSONB-колонками
// для вложенных коллекций (адрес, часы работы, множества голосов, избранное,
// история просмотров).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Типизированные ошибки хранилища. Обработчики отображают их
// в коды 404 и 409 на HTTP-границе.
var (
	// ErrUserNotFound пользователь с указанным ID или email не существует.
	ErrUserNotFound = errors.New("user not found")
	// ErrRestaurantNotFound ресторан с указанным ID не существует.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrEmailTaken email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с ресторанами и пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'restaurants'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table restaurants missing or query error: %w", err)
	}
	return nil
}
