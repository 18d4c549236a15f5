package handler

import (
	"net/http"

	"github.com/templui/goalboard/internal/ctxkeys"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/service"
)

// Scope is the goal and history services of one kind of owner.
type Scope struct {
	Goals   *service.GoalService
	History *service.HistoryService
}

// Scopes routes a request to the signed-in user's data or the guest's.
type Scopes struct {
	Users  Scope
	Guests Scope
}

func (s Scopes) resolve(r *http.Request) (Scope, string, bool) {
	if user := ctxkeys.User(r.Context()); user != nil {
		return s.Users, user.ID, true
	}
	if guestID := ctxkeys.GuestID(r.Context()); guestID != "" {
		return s.Guests, guestID, true
	}
	return Scope{}, "", false
}

// owner resolves the request scope or writes 401.
func (s Scopes) owner(w http.ResponseWriter, r *http.Request) (Scope, string, bool) {
	scope, ownerID, ok := s.resolve(r)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("no session"))
	}
	return scope, ownerID, ok
}
