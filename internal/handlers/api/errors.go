package api

import (
	"net/http"
)

// APIError is a custom error type for API setup errors
type APIError string

// Error implements the error interface
func (e APIError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           APIError = "config cannot be nil"
	ErrEmptySecret         APIError = "JWT secret cannot be empty"
	ErrNilClock            APIError = "clock cannot be nil"
	ErrInvalidToken        APIError = "invalid token"
	ErrNilGameService      APIError = "game service cannot be nil"
	ErrNilUserService      APIError = "user service cannot be nil"
	ErrNilScoreService     APIError = "score service cannot be nil"
	ErrNilMessagingService APIError = "messaging service cannot be nil"
	ErrNilJWTService       APIError = "JWT service cannot be nil"
)

// statusByCode maps messaging error codes to HTTP statuses, unknown codes are 500
var statusByCode = map[string]int{
	"NoPlayers":           http.StatusBadRequest,
	"TooManyPlayers":      http.StatusBadRequest,
	"InsufficientDice":    http.StatusBadRequest,
	"InvalidFaceSpace":    http.StatusBadRequest,
	"DuplicatePlayer":     http.StatusBadRequest,
	"UnknownPlayer":       http.StatusBadRequest,
	"InvalidFace":         http.StatusBadRequest,
	"InvalidTotal":        http.StatusBadRequest,
	"FaceMustNotDecrease": http.StatusBadRequest,
	"TotalMustIncrease":   http.StatusBadRequest,
	"AlreadyAtMaximum":    http.StatusBadRequest,
	"NoBidYet":            http.StatusBadRequest,
	"InvalidName":         http.StatusBadRequest,
	"PasswordTooShort":    http.StatusBadRequest,
	"InvalidInput":        http.StatusBadRequest,
	"InvalidCredentials":  http.StatusUnauthorized,
	"NotYourTurn":         http.StatusForbidden,
	"PlayerNotInGame":     http.StatusForbidden,
	"GameNotFound":        http.StatusNotFound,
	"UserNotFound":        http.StatusNotFound,
	"ChannelHasGame":      http.StatusConflict,
	"GameAlreadyOver":     http.StatusConflict,
	"ConcurrentUpdate":    http.StatusConflict,
	"UserAlreadyExists":   http.StatusConflict,
	"GameNotFinished":     http.StatusConflict,
}

func statusForCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
