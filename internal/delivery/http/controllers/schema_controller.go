package controllers

import (
	"net/http"

	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/helpers"
	"github.com/nitpydev/gyanith24-cms/internal/schema"
)

type SchemaController struct{}

func NewSchemaController() *SchemaController {
	return &SchemaController{}
}

// GetSchema godoc
// @Summary Get the event form schema
// @Description Returns the declarative field tables the admin UI renders the event form from: rules, enums, image storage bindings, and read-only markers. Cross-field requiredness (peopleHeader/people) is enforced server-side on every save.
// @Tags schema
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the schema document"
// @Router /schema [get]
func (c *SchemaController) GetSchema(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, schema.Describe())
}
