package repository

import (
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const purchaseRecordsTable = "purchase_records"

type PurchaseRepository interface {
	ListPurchaseRecords() ([]*domain.PurchaseRecord, error)
}

type purchaseRepository struct {
	conn *postgres.Connection
}

func NewPurchaseRepository(conn *postgres.Connection) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

func (r *purchaseRepository) ListPurchaseRecords() ([]*domain.PurchaseRecord, error) {
	query, args, err := squirrel.
		Select("seller_id", "total_amount", "items").
		From(purchaseRecordsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de registros de compra")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar registros de compra")
	}
	defer rows.Close()

	records := make([]*domain.PurchaseRecord, 0)
	for rows.Next() {
		var record domain.PurchaseRecord
		var itemsJSON []byte

		if err := rows.Scan(&record.SellerID, &record.TotalAmount, &itemsJSON); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear registro de compra")
		}

		// Os itens da transação são armazenados como jsonb
		if err := json.Unmarshal(itemsJSON, &record.Items); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar itens do registro de compra")
		}

		records = append(records, &record)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de registros de compra")
	}

	return records, nil
}
