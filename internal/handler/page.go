package handler

import (
	"embed"
	"html/template"

	"github.com/AlexZinkM/devnet-transfer/internal/model"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// pageData is what the transfer form renders
type pageData struct {
	model.FormState
	Submitting bool
	// Notice is a one-off message for a refused submission
	Notice string
}

func newPageData(state model.FormState) pageData {
	return pageData{
		FormState:  state,
		Submitting: state.Status == model.FormStatusSubmitting,
	}
}
