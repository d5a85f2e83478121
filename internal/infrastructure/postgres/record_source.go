// Package postgres implementa repository.RecordSource sobre las tablas del
// tablero en PostgreSQL (solo lectura).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zeebo/xxh3"

	"github.com/jhoicas/estoque-dashboard/internal/domain/entity"
	"github.com/jhoicas/estoque-dashboard/internal/domain/repository"
	"github.com/jhoicas/estoque-dashboard/pkg/parse"
)

var _ repository.RecordSource = (*RecordSource)(nil)

// Querier subconjunto de pgxpool.Pool / pgx.Tx usado por la fuente.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (pgx.Tx)(nil)

// Tables nombres de las tablas de origen.
type Tables struct {
	Inventory string
	Products  string
	Sales     string
	Customers string
}

// DefaultTables nombres de las tablas cargadas desde los archivos FCD_*.
func DefaultTables() Tables {
	return Tables{Inventory: "estoque", Products: "produtos", Sales: "vendas", Customers: "clientes"}
}

func (t Tables) all() []string {
	return []string{t.Inventory, t.Products, t.Sales, t.Customers}
}

// RecordSource lee inventario, productos, ventas y clientes con pgx.
type RecordSource struct {
	q           Querier
	tables      Tables
	placeholder string
}

// NewRecordSource construye la fuente. placeholder vacío usa entity.DefaultLocationPlaceholder.
func NewRecordSource(q Querier, tables Tables, placeholder string) *RecordSource {
	if placeholder == "" {
		placeholder = entity.DefaultLocationPlaceholder
	}
	return &RecordSource{q: q, tables: tables, placeholder: placeholder}
}

func (s *RecordSource) Name() string { return "postgres" }

// Fingerprint resume los contadores de pg_stat_user_tables de las cuatro tablas.
// Cualquier INSERT/UPDATE/DELETE cambia el resultado.
func (s *RecordSource) Fingerprint(ctx context.Context) (string, error) {
	const query = `
	SELECT relname, n_tup_ins, n_tup_upd, n_tup_del, n_live_tup
	FROM pg_stat_user_tables
	WHERE schemaname = current_schema() AND relname = ANY($1)
	ORDER BY relname`

	rows, err := s.q.Query(ctx, query, s.tables.all())
	if err != nil {
		return "", classify("fingerprint", err)
	}
	defer rows.Close()

	h := xxh3.New()
	for rows.Next() {
		var name string
		var ins, upd, del, live int64
		if err := rows.Scan(&name, &ins, &upd, &del, &live); err != nil {
			return "", fmt.Errorf("fingerprint scan: %w", err)
		}
		fmt.Fprintf(h, "%s|%d|%d|%d|%d;", name, ins, upd, del, live)
	}
	if err := rows.Err(); err != nil {
		return "", classify("fingerprint", err)
	}
	return fmt.Sprintf("pg:%016x", h.Sum64()), nil
}

// hasColumn consulta information_schema en el esquema actual.
func (s *RecordSource) hasColumn(ctx context.Context, table, column string) (bool, error) {
	const query = `
	SELECT EXISTS (
	    SELECT 1 FROM information_schema.columns
	    WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2
	)`
	var ok bool
	if err := s.q.QueryRow(ctx, query, table, column).Scan(&ok); err != nil {
		return false, classify(table, err)
	}
	return ok, nil
}

// LoadInventory lee el inventario. Sin columna localizacao se usa el placeholder.
// Las columnas se leen como texto y se convierten en Go con las mismas reglas que el CSV.
func (s *RecordSource) LoadInventory(ctx context.Context) (repository.InventoryLoad, error) {
	hasLocation, err := s.hasColumn(ctx, s.tables.Inventory, "localizacao")
	if err != nil {
		return repository.InventoryLoad{}, err
	}

	location := "$1::text"
	if hasLocation {
		location = "COALESCE(NULLIF(btrim(localizacao::text), ''), $1)"
	}
	query := fmt.Sprintf(`
	SELECT %s, %s, %s, %s
	FROM %s`,
		textCol("produto_id"), location, textCol("quantidade_estoque"), textCol("estoque_minimo"),
		pgx.Identifier{s.tables.Inventory}.Sanitize())

	rows, err := s.q.Query(ctx, query, s.placeholder)
	if err != nil {
		return repository.InventoryLoad{}, classify(s.tables.Inventory, err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.InventoryRecord, error) {
		var id, loc, qty, minimum string
		if err := row.Scan(&id, &loc, &qty, &minimum); err != nil {
			return entity.InventoryRecord{}, err
		}
		return entity.InventoryRecord{
			ProductID:       parse.ID(id),
			Location:        loc,
			QuantityOnHand:  parse.NullDecimal(qty),
			MinimumQuantity: parse.NullDecimal(minimum),
		}, nil
	})
	if err != nil {
		return repository.InventoryLoad{}, classify(s.tables.Inventory, err)
	}
	return repository.InventoryLoad{Records: records, LocationInjected: !hasLocation}, nil
}

func (s *RecordSource) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	query := fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s
	FROM %s`,
		textCol("produto_id"), textCol("produto_nome"), textCol("categoria"), textCol("marca"),
		textCol("preco_unitario"), pgx.Identifier{s.tables.Products}.Sanitize())

	rows, err := s.q.Query(ctx, query)
	if err != nil {
		return nil, classify(s.tables.Products, err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Product, error) {
		var p entity.Product
		var id, price string
		if err := row.Scan(&id, &p.Name, &p.Category, &p.Brand, &price); err != nil {
			return p, err
		}
		p.ProductID = parse.ID(id)
		p.UnitPrice = parse.NullDecimal(price)
		return p, nil
	})
	if err != nil {
		return nil, classify(s.tables.Products, err)
	}
	return products, nil
}

// LoadSales lee las ventas. data_venda se interpreta día-primero aunque la columna sea text,
// cantidad y valor unitario no numéricos valen 0 y el total no numérico se recalcula
// como cantidad × valor unitario.
func (s *RecordSource) LoadSales(ctx context.Context) ([]entity.Sale, error) {
	query := fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
	FROM %s`,
		textCol("venda_id"), textCol("data_venda"), textCol("loja_id"), textCol("produto_id"),
		textCol("cliente_id"), textCol("quantidade_vendida"), textCol("valor_unitario"),
		textCol("valor_total"), textCol("forma_pagamento"), textCol("canal_venda"),
		pgx.Identifier{s.tables.Sales}.Sanitize())

	rows, err := s.q.Query(ctx, query)
	if err != nil {
		return nil, classify(s.tables.Sales, err)
	}
	sales, err := pgx.CollectRows(rows, scanSale)
	if err != nil {
		return nil, classify(s.tables.Sales, err)
	}
	return sales, nil
}

func scanSale(row pgx.CollectableRow) (entity.Sale, error) {
	var id, date, store, product, customer, qty, unit, total, payment, channel string
	err := row.Scan(&id, &date, &store, &product, &customer, &qty, &unit, &total, &payment, &channel)
	if err != nil {
		return entity.Sale{}, err
	}
	sl := entity.Sale{
		SaleID:        parse.ID(id),
		SaleDate:      parse.DayFirst(date),
		StoreID:       parse.ID(store),
		ProductID:     parse.ID(product),
		CustomerID:    parse.ID(customer),
		QuantitySold:  parse.DecimalOrZero(qty),
		UnitValue:     parse.DecimalOrZero(unit),
		PaymentMethod: payment,
		SalesChannel:  channel,
	}
	sl.TotalValue = parse.TotalOrProduct(total, sl.QuantitySold, sl.UnitValue)
	return sl, nil
}

// textCol lee una columna de cualquier tipo como texto recortado; NULL → "".
// Con el DateStyle ISO por defecto, date y timestamp salen como AAAA-MM-DD.
func textCol(name string) string {
	return fmt.Sprintf("COALESCE(btrim(%s::text), '')", pgx.Identifier{name}.Sanitize())
}

// LoadCustomers lee clientes; el Loader degrada cualquier error a tabla vacía.
func (s *RecordSource) LoadCustomers(ctx context.Context) ([]entity.Customer, error) {
	query := fmt.Sprintf(`
	SELECT %s, %s
	FROM %s`, textCol("cliente_id"), textCol("nome"), pgx.Identifier{s.tables.Customers}.Sanitize())

	rows, err := s.q.Query(ctx, query)
	if err != nil {
		return nil, classify(s.tables.Customers, err)
	}
	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Customer, error) {
		var c entity.Customer
		var id string
		if err := row.Scan(&id, &c.Name); err != nil {
			return c, err
		}
		c.CustomerID = parse.ID(id)
		return c, nil
	})
	if err != nil {
		return nil, classify(s.tables.Customers, err)
	}
	return customers, nil
}
