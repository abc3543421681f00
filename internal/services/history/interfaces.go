package history

import "github.com/R0PPER/Paymento/internal/models"

// Rendering capabilities the history service drives. Presentation variants
// implement whichever capability they support; a nil capability is skipped.
type SpinnerRenderer interface {
	RenderSpinner()
}

type ErrorRenderer interface {
	RenderError(message string)
}

type ListRenderer interface {
	RenderList(transactions []models.Transaction)
}
