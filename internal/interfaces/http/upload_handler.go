package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/infrastructure/storage"
)

// UploadHandler sube archivos del panel al storage local. Las rutas exigen
// editor o admin; los archivos se sirven como estáticos bajo /uploads.
type UploadHandler struct {
	store *storage.LocalStore
}

// NewUploadHandler construye el handler.
func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload godoc
// @Summary      Subir archivo (imagen, audio, pdf)
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "campo file requerido")
	}
	name, err := h.store.Save(fh)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return created(c, fiber.Map{
		"filename": name,
		"url":      "/uploads/" + name,
	})
}

// Delete godoc
// @Summary      Borrar archivo subido (solo admin)
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Param        filename  path  string  true  "Nombre del archivo"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/uploads/{filename} [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Delete(c.Params("filename")); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return ok(c, fiber.Map{"message": "archivo eliminado"})
}
