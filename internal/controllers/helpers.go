package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/salaspot/rooms-service/internal/auth"
	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and runs struct
// validation. On failure it writes the error response and returns false.
// Bad JSON is a 400; a failed validation rule is a 422.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnprocessableEntity, utils.ErrCodeValidation, "Validation error", validationDetails(err), err)
		return false
	}
	return true
}

// validationDetails flattens validator errors into field → rule pairs for
// the response envelope.
func validationDetails(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}

// requireUser pulls the authenticated user the middleware attached. A miss
// means the route was wired without the auth middleware; respond 401 rather
// than panic.
func requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated", nil)
		return nil, false
	}
	return user, true
}

// pathID parses the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id", nil, err)
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, returning 0 when it
// is absent or unparseable.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

// queryBool parses an optional boolean query parameter. Accepts the same
// spellings the old clients sent ("true"/"1", "false"/"0").
func queryBool(r *http.Request, name string) *bool {
	switch r.URL.Query().Get(name) {
	case "true", "1":
		return utils.Ptr(true)
	case "false", "0":
		return utils.Ptr(false)
	}
	return nil
}
