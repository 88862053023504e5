package item

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GameItem-Admin/GameItem-Admin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// every pooled connection would get its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Item{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func strPtr(s string) *string {
	return &s
}

func testItem(id, name string) models.Item {
	return models.Item{
		ID:            id,
		Name:          name,
		Description:   "a test item",
		StackSize:     1,
		EquipableSlot: "NONE",
		Effects:       strPtr(`{"attributes":{"strength":1}}`),
	}
}

// seedItems inserts test data into the database.
func seedItems(t *testing.T, db *gorm.DB, items []models.Item) {
	t.Helper()
	for _, it := range items {
		err := db.Create(&it).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		id            string
		seedData      []models.Item
		expectedError error
		expectedName  string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			id:            "sword",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty id",
			dbParam:       db,
			id:            "",
			expectedError: ErrItemIDEmpty,
		},
		{
			name:          "item not found",
			dbParam:       db,
			id:            "nonexistent",
			expectedError: ErrItemNotFound,
		},
		{
			name:         "successful get",
			dbParam:      db,
			id:           "sword",
			seedData:     []models.Item{testItem("sword", "Sword")},
			expectedName: "Sword",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM items")
			}

			if tc.seedData != nil {
				seedItems(t, tc.dbParam, tc.seedData)
			}

			row, err := Get(tc.dbParam, tc.id)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, row)
			} else {
				require.NoError(t, err)
				require.NotNil(t, row)
				assert.Equal(t, tc.expectedName, row.Name)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		seedData      []models.Item
		expectedError error
		expectedCount int
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			expectedError: ErrDBNil,
		},
		{
			name:          "empty database",
			dbParam:       db,
			expectedCount: 0,
		},
		{
			name:    "multiple items",
			dbParam: db,
			seedData: []models.Item{
				testItem("sword", "Sword"),
				testItem("shield", "Shield"),
				{ID: "rock", Name: "Rock", Description: "no effects", StackSize: 99, EquipableSlot: "NONE"},
			},
			expectedCount: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM items")
			}

			if tc.seedData != nil {
				seedItems(t, tc.dbParam, tc.seedData)
			}

			rows, err := GetAll(tc.dbParam)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, rows)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, rows)
				assert.Len(t, rows, tc.expectedCount)

				count, countErr := Count(tc.dbParam)
				require.NoError(t, countErr)
				assert.Equal(t, int64(tc.expectedCount), count)
			}
		})
	}
}

func TestUpsert(t *testing.T) {
	db := setupTestDB(t)

	existing := testItem("sword", "Sword")

	testCases := []struct {
		name            string
		dbParam         *gorm.DB
		row             *models.Item
		policy          ConflictPolicy
		seedData        []models.Item
		expectedError   error
		expectedOutcome Outcome
		expectedName    string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			row:           &existing,
			policy:        OnConflictIgnore,
			expectedError: ErrDBNil,
		},
		{
			name:          "nil row",
			dbParam:       db,
			policy:        OnConflictIgnore,
			expectedError: ErrItemIDEmpty,
		},
		{
			name:          "empty id",
			dbParam:       db,
			row:           &models.Item{Name: "nameless"},
			policy:        OnConflictIgnore,
			expectedError: ErrItemIDEmpty,
		},
		{
			name:          "unknown policy",
			dbParam:       db,
			row:           &existing,
			policy:        "merge",
			expectedError: ErrUnknownPolicy,
		},
		{
			name:            "insert new item",
			dbParam:         db,
			row:             &existing,
			policy:          OnConflictIgnore,
			expectedOutcome: OutcomeInserted,
			expectedName:    "Sword",
		},
		{
			name:            "ignore keeps stored row",
			dbParam:         db,
			row:             func() *models.Item { r := testItem("sword", "Renamed Sword"); return &r }(),
			policy:          OnConflictIgnore,
			seedData:        []models.Item{existing},
			expectedOutcome: OutcomeSkipped,
			expectedName:    "Sword",
		},
		{
			name:            "overwrite replaces stored row",
			dbParam:         db,
			row:             func() *models.Item { r := testItem("sword", "Renamed Sword"); return &r }(),
			policy:          OnConflictOverwrite,
			seedData:        []models.Item{existing},
			expectedOutcome: OutcomeUpdated,
			expectedName:    "Renamed Sword",
		},
		{
			name:            "overwrite inserts missing row",
			dbParam:         db,
			row:             func() *models.Item { r := testItem("axe", "Axe"); return &r }(),
			policy:          OnConflictOverwrite,
			expectedOutcome: OutcomeInserted,
			expectedName:    "Axe",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM items")
			}

			if tc.seedData != nil {
				seedItems(t, tc.dbParam, tc.seedData)
			}

			var row *models.Item
			if tc.row != nil {
				clone := *tc.row
				row = &clone
			}

			outcome, err := Upsert(tc.dbParam, row, tc.policy)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, outcome)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedOutcome, outcome)

			stored, err := Get(tc.dbParam, row.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, stored.Name)

			count, err := Count(tc.dbParam)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.seedData)+btoi(tc.expectedOutcome == OutcomeInserted)), count)
		})
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}

	return 0
}

func TestConflictPolicyValid(t *testing.T) {
	assert.True(t, OnConflictIgnore.Valid())
	assert.True(t, OnConflictOverwrite.Valid())
	assert.False(t, ConflictPolicy("").Valid())
	assert.False(t, ConflictPolicy("merge").Valid())
}
