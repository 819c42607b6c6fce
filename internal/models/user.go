package models

import "time"

// MaxHistoryEntries максимальная длина истории просмотров пользователя.
const MaxHistoryEntries = 100

// DefaultViewType метка типа просмотра по умолчанию для записи истории.
const DefaultViewType = "Details viewed"

// HistoryEntry запись истории просмотров: идентификатор ресторана,
// снимок его названия на момент просмотра, время и тип просмотра.
// Каждый ресторан встречается в истории не более одного раза —
// на позиции последнего просмотра.
type HistoryEntry struct {
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	ViewedAt       time.Time `json:"viewedAt"`
	ViewType       string    `json:"viewType"`
}

// User пользователь приложения. Email хранится нормализованным
// (обрезанным, в нижнем регистре) и уникален. Избранное — список
// идентификаторов ресторанов без дубликатов, история — ограниченный
// список записей, самые свежие в начале.
type User struct {
	ID                    string         `json:"id"`
	Email                 string         `json:"email"`
	PasswordHash          string         `json:"-"`
	Roles                 []string       `json:"roles"`
	Enabled               bool           `json:"enabled"`
	FavoriteRestaurantIDs []string       `json:"favoriteRestaurantIds"`
	BrowseHistory         []HistoryEntry `json:"browseHistory"`
}
