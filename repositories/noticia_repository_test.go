package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func noticiaColumns() []string {
	return []string{"id_noticia", "titulo", "descripcion", "imagen", "fecha_hora"}
}

func TestGetAllCallsProcedure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoticiaRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM fn_get_noticia()")).
		WillReturnRows(sqlmock.NewRows(noticiaColumns()).
			AddRow(1, "Feria", "Texto", "", now).
			AddRow(2, "Taller", "Otro texto", "https://img", now))

	noticias, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, noticias, 2)
	assert.Equal(t, "Feria", noticias[0].Titulo)
	assert.Equal(t, uint(2), noticias[1].IDNoticia)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDMissingNoticia(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoticiaRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM fn_get_noticia_por_id($1)")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(noticiaColumns()))

	noticia, err := repo.GetByID(9)
	assert.NoError(t, err)
	assert.Nil(t, noticia)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePassesAllArguments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoticiaRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM fn_crear_noticia($1, $2, $3, $4)")).
		WithArgs("Feria", "Texto", "", 7).
		WillReturnRows(sqlmock.NewRows(noticiaColumns()).
			AddRow(11, "Feria", "Texto", "", now))

	noticia, err := repo.Create("Feria", "Texto", "", 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(11), noticia.IDNoticia)
	assert.Equal(t, "Feria", noticia.Titulo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
