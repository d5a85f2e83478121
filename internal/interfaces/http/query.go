package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-dashboard/internal/application/dto"
	"github.com/jhoicas/estoque-dashboard/internal/application/filter"
	"github.com/jhoicas/estoque-dashboard/internal/domain"
	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
	"github.com/jhoicas/estoque-dashboard/pkg/parse"
)

// QueryValidator valida los parámetros escalares de la query con etiquetas `validate`.
type QueryValidator struct {
	v *validator.Validate
}

// NewQueryValidator registra la regla sale_date (ISO o día-primero) y usa el nombre del
// tag `query` en los mensajes.
func NewQueryValidator() *QueryValidator {
	v := validator.New()
	_ = v.RegisterValidation("sale_date", func(fl validator.FieldLevel) bool {
		return parse.DayFirst(fl.Field().String()) != nil
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &QueryValidator{v: v}
}

// Struct devuelve un error envuelto en domain.ErrInvalidInput con un mensaje por campo.
func (qv *QueryValidator) Struct(s any) error {
	err := qv.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s debe ser >= %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s debe ser <= %s", fe.Field(), fe.Param())
	case "sale_date":
		return fmt.Sprintf("%s no es una fecha válida (AAAA-MM-DD o DD/MM/AAAA)", fe.Field())
	default:
		return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
	}
}

// parseDashboardQuery lee y valida top_n, from y to.
func (qv *QueryValidator) parseDashboardQuery(c *fiber.Ctx) (dto.DashboardQuery, error) {
	var q dto.DashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fmt.Errorf("%w: parámetros de consulta inválidos", domain.ErrInvalidInput)
	}
	if err := qv.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// selection lee una faceta multivaluada (clave repetida).
// Ausente → All; presente con valores vacíos (category=) → Only() sin valores.
func selection(c *fiber.Ctx, key string) filter.Selection {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return filter.All()
	}
	var values []string
	for _, raw := range args.PeekMulti(key) {
		if v := strings.TrimSpace(string(raw)); v != "" {
			values = append(values, v)
		}
	}
	return filter.Only(values...)
}

// statusSelection acepta código (BELOW_MINIMUM) o etiqueta ("Abaixo do mínimo").
// Un valor desconocido se conserva tal cual y no coincide con ninguna fila.
func statusSelection(c *fiber.Ctx) filter.Selection {
	sel := selection(c, "status")
	if sel.IsAll() {
		return sel
	}
	raw := sel.Values()
	codes := make([]string, 0, len(raw))
	for _, v := range raw {
		if st, ok := entity.ParseStockStatus(v); ok {
			codes = append(codes, string(st))
			continue
		}
		codes = append(codes, v)
	}
	return filter.Only(codes...)
}

func inventoryFilter(c *fiber.Ctx) filter.InventoryFilter {
	return filter.InventoryFilter{
		Category: selection(c, "category"),
		Brand:    selection(c, "brand"),
		Location: selection(c, "location"),
		Status:   statusSelection(c),
	}
}

// salesFilter arma las facetas de ventas; q ya fue validada.
func salesFilter(c *fiber.Ctx, q dto.DashboardQuery) filter.SalesFilter {
	return filter.SalesFilter{
		Store:         selection(c, "store"),
		Product:       selection(c, "product"),
		Customer:      selection(c, "customer"),
		PaymentMethod: selection(c, "payment_method"),
		Channel:       selection(c, "channel"),
		Dates: filter.DateRange{
			Start: parse.DayFirst(q.From),
			End:   parse.DayFirst(q.To),
		},
	}
}
