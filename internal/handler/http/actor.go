package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/opsgrid/workforce-backend-go/internal/domain/auth"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/response"
)

// actorFromRequest builds the authenticated Actor from verified JWT claims.
// Routes behind AuthRequired always have claims; a missing user_id means the
// token was minted wrong.
func actorFromRequest(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	actor := user.Actor{UserID: userID}

	if roleStr, ok := claims["role"].(string); ok {
		actor.Role = user.ParseRole(roleStr)
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		actor.EmployeeID = &employeeID
	}

	return actor, nil
}

// paging reads page/limit query params, defaulting to page 1 / limit 20.
func paging(r *http.Request) (page, limit int) {
	page, limit = 1, 20
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	return page, limit
}

func listMeta(page, limit int, total int64) *response.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
