package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
)

// productRequest is the create/update payload. Business-rule validation lives
// here at the presentation edge; the repository accepts any input shape.
type productRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0,lte=999999"`
	Category    string   `json:"category" validate:"required"`
	Stock       *int     `json:"stock" validate:"required,gte=0,lte=9999"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
}

func (r *productRequest) toInput() domain.ProductInput {
	return domain.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Stock:       *r.Stock,
		ImageURL:    r.ImageURL,
	}
}

type requestValidator struct {
	rules *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{rules: validator.New()}
}

// validate applies the struct rules plus the fixed category set. Category is
// checked by hand because the set contains non-ASCII values that read poorly
// in a oneof tag.
func (v *requestValidator) validate(req *productRequest) error {
	if err := v.rules.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid field %s: failed %s validation", verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}

	if !domain.ValidCategory(req.Category) {
		return fmt.Errorf("invalid field Category: %q is not a known category", req.Category)
	}

	return nil
}
