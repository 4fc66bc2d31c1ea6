package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var leadTestColumns = []string{
	"id", "name", "email", "phone", "location", "capital", "profile", "operation",
	"interest", "source", "status", "notes", "meeting_date", "meeting_time",
	"meeting_link", "submitted_at", "created_at", "updated_at",
}

func leadRow(rows *sqlmock.Rows, id, name string, at time.Time) {
	rows.AddRow(id, name, nil, nil, nil, nil, "outro", "definindo",
		nil, "outro", "novo", nil, nil, nil, nil, at, at, at)
}

// TestListResolvesTagsForAllLeads - as tags e atividades têm que chegar em
// TODOS os leads da lista, não só nos últimos escaneados
func TestListResolvesTagsForAllLeads(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()

	rows := sqlmock.NewRows(leadTestColumns)
	leadRow(rows, "l1", "Maria Souza", now)
	leadRow(rows, "l2", "João Lima", now)
	leadRow(rows, "l3", "Ana Prado", now)
	mock.ExpectQuery("FROM leads").WillReturnRows(rows)

	tagRows := sqlmock.NewRows([]string{"lead_id", "id", "name", "color"}).
		AddRow("l1", "t1", "Alto Valor", "#10B981").
		AddRow("l3", "t2", "Frio", "#3B82F6")
	mock.ExpectQuery("FROM lead_tags").WillReturnRows(tagRows)

	actRows := sqlmock.NewRows([]string{"id", "lead_id", "type", "content", "old_status", "new_status", "created_at"}).
		AddRow("a1", "l1", "note", "Lead criado", nil, nil, now)
	mock.ExpectQuery("FROM activities").WillReturnRows(actRows)

	repo := NewLeadRepository(db)
	leads, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, leads, 3)

	// O primeiro lead da lista também tem que sair resolvido.
	assert.Len(t, leads[0].Tags, 1, "l1 deveria ter a tag Alto Valor")
	assert.Equal(t, "Alto Valor", leads[0].Tags[0].Name)
	assert.Len(t, leads[0].Activities, 1)

	assert.Empty(t, leads[1].Tags)
	assert.Len(t, leads[2].Tags, 1)
	assert.Equal(t, "Frio", leads[2].Tags[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// As consultas de tags e atividades filtram pelos ids carregados em vez de
// varrer as tabelas inteiras.
func TestListFiltersJoinQueriesByLeadID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()

	rows := sqlmock.NewRows(leadTestColumns)
	leadRow(rows, "l1", "Maria Souza", now)
	mock.ExpectQuery("FROM leads").WillReturnRows(rows)

	mock.ExpectQuery(`FROM lead_tags(.|\n)+WHERE lt\.lead_id = ANY`).
		WillReturnRows(sqlmock.NewRows([]string{"lead_id", "id", "name", "color"}))
	mock.ExpectQuery(`FROM activities(.|\n)+WHERE lead_id = ANY`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "lead_id", "type", "content", "old_status", "new_status", "created_at"}))

	repo := NewLeadRepository(db)
	leads, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, leads, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
