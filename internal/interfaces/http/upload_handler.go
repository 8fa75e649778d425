package http

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/application/upload"
	"github.com/tablesprint/catalog-api/internal/domain"
)

// UploadFormField campo multipart que contiene la imagen.
const UploadFormField = "image"

// UploadHandler sube y sirve imágenes.
type UploadHandler struct {
	uc *upload.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *upload.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagen"
// @Success      200    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(UploadFormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "No file uploaded"})
	}
	f, err := fh.Open()
	if err != nil {
		return storageError(c, err, "Failed to read upload")
	}
	defer f.Close()

	out, err := h.uc.Upload(c.UserContext(), fh.Filename, f, fh.Size, fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return storageError(c, err, "Failed to store upload")
	}
	return c.JSON(out)
}

// Serve godoc
// @Summary      Descargar imagen subida
// @Tags         uploads
// @Produce      octet-stream
// @Param        filename  path  string  true  "Nombre devuelto por /upload"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /uploads/{filename} [get]
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	name := c.Params("filename")
	rc, err := h.uc.Open(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "File not found"})
		}
		return storageError(c, err, "Failed to read file")
	}
	if ext := filepath.Ext(name); ext != "" {
		c.Type(ext)
	}
	return c.SendStream(rc)
}
