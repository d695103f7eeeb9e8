package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Response is the envelope every API endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    *PageMeta   `json:"meta,omitempty"`
}

type PageMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, Response{Success: true, Data: data})
}

func RespondWithMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Response{Success: true, Message: message})
}

func RespondWithPage(w http.ResponseWriter, code int, data interface{}, meta PageMeta) {
	writeJSON(w, code, Response{Success: true, Data: data, Meta: &meta})
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Response{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// ParsePagination reads page/limit query params with sane bounds.
func ParsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = defaultPage
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// NewPageMeta computes the page count for a total row count.
func NewPageMeta(page, limit, total int) PageMeta {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return PageMeta{Page: page, Limit: limit, Total: total, Pages: pages}
}
