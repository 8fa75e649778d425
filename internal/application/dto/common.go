package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito con solo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDResponse id generado por una inserción.
type IDResponse struct {
	ID int64 `json:"id"`
}

// UploadResponse URL relativa de una imagen subida.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
