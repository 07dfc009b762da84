package service

// QRCodeService defines the interface for recipe share QR code generation.
type QRCodeService interface {
	// GenerateRecipeShareQR renders a PNG QR code encoding the public share
	// URL of the given recipe.
	GenerateRecipeShareQR(recipeID int64) ([]byte, error)
}
