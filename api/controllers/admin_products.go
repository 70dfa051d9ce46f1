package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/stridewell/storefront-backend/api/responses"
	"github.com/stridewell/storefront-backend/api/validators"
	"github.com/stridewell/storefront-backend/internal/catalog"
	"github.com/stridewell/storefront-backend/internal/images"
	pkgerrors "github.com/stridewell/storefront-backend/pkg/errors"
	"github.com/stridewell/storefront-backend/pkg/logger"
)

const maxUploadBytes = 32 << 20

// adminCreateProductForm names the multipart fields that must be present.
// Running it through the shared validator keeps the field-keyed error
// details consistent with the JSON endpoints.
type adminCreateProductForm struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Price    string `json:"price" validate:"required"`
}

// AdminCreateProduct accepts multipart form fields plus an optional image
// upload. A rejected image never fails the request; the product is simply
// created without one.
func AdminCreateProduct(svc catalog.Service, imgs *images.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		form := adminCreateProductForm{
			Name:     r.FormValue("name"),
			Category: r.FormValue("category"),
			Price:    r.FormValue("price"),
		}
		if err := validators.ValidateStruct(form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := catalog.CreateProductInput{
			Name:        form.Name,
			Category:    form.Category,
			Brand:       r.FormValue("brand"),
			Description: optionalFormValue(r, "description"),
			Size:        optionalFormValue(r, "size"),
			Color:       optionalFormValue(r, "color"),
		}

		price, err := decimal.NewFromString(form.Price)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price must be a decimal number"))
			return
		}
		input.Price = price

		if raw := r.FormValue("stock_quantity"); raw != "" {
			stock, err := strconv.Atoi(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity must be an integer"))
				return
			}
			input.StockQuantity = stock
		}
		if raw := r.FormValue("is_featured"); raw != "" {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "is_featured must be a boolean"))
				return
			}
			input.IsFeatured = featured
		}

		if url := saveUploadedImage(r, imgs); url != "" {
			input.ImageURL = &url
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies only the multipart fields present in the
// request; everything else on the product is preserved.
func AdminUpdateProduct(svc catalog.Service, imgs *images.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		input := catalog.UpdateProductInput{
			Name:        optionalFormValue(r, "name"),
			Description: optionalFormValue(r, "description"),
			Category:    optionalFormValue(r, "category"),
			Brand:       optionalFormValue(r, "brand"),
			Size:        optionalFormValue(r, "size"),
			Color:       optionalFormValue(r, "color"),
		}

		if raw := optionalFormValue(r, "price"); raw != nil {
			price, err := decimal.NewFromString(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price must be a decimal number"))
				return
			}
			input.Price = &price
		}
		if raw := optionalFormValue(r, "stock_quantity"); raw != nil {
			stock, err := strconv.Atoi(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity must be an integer"))
				return
			}
			input.StockQuantity = &stock
		}
		if raw := optionalFormValue(r, "is_featured"); raw != nil {
			featured, err := strconv.ParseBool(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "is_featured must be a boolean"))
				return
			}
			input.IsFeatured = &featured
		}
		if raw := optionalFormValue(r, "is_active"); raw != nil {
			active, err := strconv.ParseBool(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "is_active must be a boolean"))
				return
			}
			input.IsActive = &active
		}

		if url := saveUploadedImage(r, imgs); url != "" {
			input.ImageURL = &url
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct soft-deletes the product.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Deactivate(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func optionalFormValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func saveUploadedImage(r *http.Request, imgs *images.Service) string {
	if imgs == nil {
		return ""
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return ""
	}
	defer file.Close()

	stored := imgs.Save(r.Context(), header.Filename, file)
	if stored == "" {
		return ""
	}
	return imgs.PublicURL(stored)
}
