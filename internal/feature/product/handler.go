package product

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-product-api/internal/apperr"
	"go-product-api/internal/core/cache"
	"go-product-api/internal/core/upload"
	"go-product-api/internal/repo"
	"go-product-api/internal/schema"
	"go-product-api/internal/transport/http/middleware"
	"go-product-api/internal/transport/http/response"
)

// Handler orchestrates the product endpoints: validate happened upstream in
// the gate, so it only authorizes, persists and formats.
type Handler struct {
	repo     *Repo
	uploader upload.Uploader
	cache    *cache.Cache
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewHandler(r *Repo, up upload.Uploader, ch *cache.Cache, ttl time.Duration, log *zap.Logger) *Handler {
	return &Handler{repo: r, uploader: up, cache: ch, cacheTTL: ttl, log: log}
}

type listQuery struct {
	repo.PageParams
	Q string `form:"q"`
}

func (h *Handler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Abort(c, apperr.BadRequest(err.Error()))
		return
	}
	page, err := h.repo.List(c.Request.Context(), strings.TrimSpace(q.Q), q.PageParams)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	response.Message(c, "products retrieved successfully")
	response.JSON(c, http.StatusOK, page)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	if p == nil {
		middleware.Abort(c, errNotFound())
		return
	}
	response.Message(c, "products retrieved successfully")
	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	payload := middleware.Payload(c)

	meta, ok := payload["image"].(schema.FileMeta)
	if !ok {
		middleware.Abort(c, apperr.BadRequest("image file missing from payload"))
		return
	}
	url, err := h.uploadImage(c.Request.Context(), meta)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	p := &Product{
		Name:        str(payload, "name"),
		Price:       num(payload, "price"),
		Category:    str(payload, "category"),
		Description: str(payload, "description"),
		Stock:       int(num(payload, "stock")),
		ImageURL:    url,
	}
	if claims, ok := middleware.ClaimsFrom(c); ok {
		p.OwnerID = claims.UID
	}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Message(c, "product created successfully")
	response.JSON(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	payload := middleware.Payload(c)

	updates := map[string]any{}
	if v, ok := payload["name"]; ok {
		updates["name"] = v
	}
	if v, ok := payload["price"]; ok {
		updates["price"] = v
	}
	if v, ok := payload["category"]; ok {
		updates["category"] = v
	}
	if v, ok := payload["description"]; ok {
		updates["description"] = v
	}
	if v, ok := payload["stock"]; ok {
		updates["stock"] = int(v.(float64))
	}
	if meta, ok := payload["image"].(schema.FileMeta); ok {
		url, err := h.uploadImage(c.Request.Context(), meta)
		if err != nil {
			middleware.Abort(c, err)
			return
		}
		updates["image_url"] = url
	}

	p, err := h.repo.Update(c.Request.Context(), id, updates)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	if p == nil {
		middleware.Abort(c, errNotFound())
		return
	}
	h.invalidate(c.Request.Context(), id)

	response.Message(c, "products updated successfully")
	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	p, err := h.repo.SoftDelete(c.Request.Context(), id)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	if p == nil {
		middleware.Abort(c, errNotFound())
		return
	}
	h.invalidate(c.Request.Context(), id)

	response.Message(c, "products deleted successfully")
	response.JSON(c, http.StatusOK, p)
}

// fetch serves by-id reads through the cache when one is configured.
func (h *Handler) fetch(ctx context.Context, id string) (*Product, error) {
	if h.cache == nil {
		return h.repo.FindByID(ctx, id)
	}
	return cache.GetOrLoadJSON[Product](h.cache, ctx, cacheKey(id), h.cacheTTL,
		func(ctx context.Context) (*Product, error) {
			return h.repo.FindByID(ctx, id)
		})
}

func (h *Handler) invalidate(ctx context.Context, id string) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, cacheKey(id))
	}
}

// uploadImage pushes the validated file to the image host. A document write
// failing afterwards leaves the uploaded image orphaned; the document is the
// source of truth.
func (h *Handler) uploadImage(ctx context.Context, meta schema.FileMeta) (string, error) {
	f, err := meta.Header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	url, err := h.uploader.Upload(ctx, f, meta.OriginalName)
	if err != nil {
		h.log.Warn("image upload failed", zap.String("file", meta.OriginalName), zap.Error(err))
		return "", err
	}
	return url, nil
}

func cacheKey(id string) string { return "product:" + id }

func errNotFound() *apperr.Error {
	return apperr.NotFound("product does not exist", func() apperr.Response {
		return apperr.Response{Message: "product does not exist"}
	})
}

func str(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

func num(payload map[string]any, key string) float64 {
	n, _ := payload[key].(float64)
	return n
}
