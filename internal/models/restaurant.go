// Package models содержит структуры данных приложения: рестораны,
// пользователи, записи истории просмотров и агрегаты голосования.
package models

// Address почтовый адрес ресторана.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// GeoPoint географическая точка ресторана (долгота, широта).
type GeoPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Restaurant описывает ресторан со всеми атрибутами карточки,
// часами работы по дням недели и множествами проголосовавших пользователей.
//
// Часы работы хранятся как map: ключ — день недели в нижнем регистре
// ("monday".."sunday"), значение — интервал вида "HH:mm-HH:mm"
// (может переходить через полночь).
type Restaurant struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Cuisine             string            `json:"cuisine"`
	PriceLevel          int               `json:"priceLevel"`
	Address             Address           `json:"address"`
	Phone               string            `json:"phone"`
	Website             string            `json:"website"`
	Location            *GeoPoint         `json:"location,omitempty"`
	Images              []string          `json:"images"`
	Tags                []string          `json:"tags"`
	Hours               map[string]string `json:"hours"`
	ReservationRequired bool              `json:"reservationRequired"`
	UpvoteUserIDs       []string          `json:"upvoteUserIds"`
	DownvoteUserIDs     []string          `json:"downvoteUserIds"`
}

// UpvoteCount возвращает количество голосов "за".
func (r *Restaurant) UpvoteCount() int {
	return len(r.UpvoteUserIDs)
}

// DownvoteCount возвращает количество голосов "против".
func (r *Restaurant) DownvoteCount() int {
	return len(r.DownvoteUserIDs)
}

// VoteCount возвращает итоговый рейтинг: голоса "за" минус голоса "против".
func (r *Restaurant) VoteCount() int {
	return len(r.UpvoteUserIDs) - len(r.DownvoteUserIDs)
}

// HasUserUpvoted проверяет, голосовал ли пользователь "за".
func (r *Restaurant) HasUserUpvoted(userID string) bool {
	return containsID(r.UpvoteUserIDs, userID)
}

// HasUserDownvoted проверяет, голосовал ли пользователь "против".
func (r *Restaurant) HasUserDownvoted(userID string) bool {
	return containsID(r.DownvoteUserIDs, userID)
}

// AddUpvote переносит пользователя в множество "за": сначала удаляет его
// из множества "против", затем добавляет в "за", если его там еще нет.
// Инвариант: пользователь состоит максимум в одном из двух множеств.
func (r *Restaurant) AddUpvote(userID string) {
	r.DownvoteUserIDs = removeID(r.DownvoteUserIDs, userID)
	if !containsID(r.UpvoteUserIDs, userID) {
		r.UpvoteUserIDs = append(r.UpvoteUserIDs, userID)
	}
}

// AddDownvote переносит пользователя в множество "против", симметрично AddUpvote.
func (r *Restaurant) AddDownvote(userID string) {
	r.UpvoteUserIDs = removeID(r.UpvoteUserIDs, userID)
	if !containsID(r.DownvoteUserIDs, userID) {
		r.DownvoteUserIDs = append(r.DownvoteUserIDs, userID)
	}
}

// RemoveVote удаляет пользователя из обоих множеств голосов.
// Повторный вызов ничего не меняет.
func (r *Restaurant) RemoveVote(userID string) {
	r.UpvoteUserIDs = removeID(r.UpvoteUserIDs, userID)
	r.DownvoteUserIDs = removeID(r.DownvoteUserIDs, userID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// VoteStatus агрегированное состояние голосования по ресторану
// с точки зрения конкретного (возможно анонимного) пользователя.
type VoteStatus struct {
	HasUpvoted    bool `json:"hasUpvoted"`
	HasDownvoted  bool `json:"hasDownvoted"`
	UpvoteCount   int  `json:"upvoteCount"`
	DownvoteCount int  `json:"downvoteCount"`
	VoteCount     int  `json:"voteCount"`
}

// RestaurantFilter параметры структурированного фильтра ресторанов.
// Nil-поля означают отсутствие ограничения.
type RestaurantFilter struct {
	Cuisine     string
	PriceMin    *int
	PriceMax    *int
	Reservation *bool
	OpenNow     bool
	Cities      []string
}
