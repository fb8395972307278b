package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullIDs(t *testing.T) {
	assert.Equal(t, "p1.salesforce_core", DatasetFullID("p1", "salesforce_core"))
	assert.Equal(t, "p1.salesforce_core.t1", TableFullID("p1", "salesforce_core", "t1"))
	assert.Equal(t, "p1.salesforce_core.t1.f1", FieldFullID("p1", "salesforce_core", "t1", "f1"))
	assert.Equal(t, "p1.d1", DatasetRef{ProjectID: "p1", DatasetID: "d1"}.FullID())
	assert.Equal(t, "p1.d1.t1", TableRef{ProjectID: "p1", DatasetID: "d1", TableID: "t1"}.FullID())
}

func TestParseTableFullID(t *testing.T) {
	tests := []struct {
		name    string
		fullID  string
		want    TableRef
		wantErr error
	}{
		{
			name:   "valid",
			fullID: "p1.d1.t1",
			want:   TableRef{ProjectID: "p1", DatasetID: "d1", TableID: "t1"},
		},
		{
			name:   "domain scoped project",
			fullID: "example.com:p1.d1.t1",
			want:   TableRef{ProjectID: "example.com:p1", DatasetID: "d1", TableID: "t1"},
		},
		{
			name:    "too few parts",
			fullID:  "p1.d1",
			wantErr: ErrInvalidFullID,
		},
		{
			name:    "too many parts",
			fullID:  "p1.d1.t1.f1",
			wantErr: ErrInvalidFullID,
		},
		{
			name:    "empty part",
			fullID:  "p1..t1",
			wantErr: ErrInvalidFullID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTableFullID(tt.fullID)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDatasetFullID(t *testing.T) {
	ref, err := ParseDatasetFullID("p1.d1")
	assert.NoError(t, err)
	assert.Equal(t, DatasetRef{ProjectID: "p1", DatasetID: "d1"}, ref)

	_, err = ParseDatasetFullID("p1")
	assert.ErrorIs(t, err, ErrInvalidFullID)

	_, err = ParseDatasetFullID("p1.d1.t1")
	assert.ErrorIs(t, err, ErrInvalidFullID)
}

func TestEntityTypeIncludes(t *testing.T) {
	assert.True(t, EntityType("").Includes(EntityTypeField))
	assert.True(t, EntityType("TABLE").Includes(EntityTypeTable))
	assert.False(t, EntityType("table").Includes(EntityTypeDataset))
	assert.False(t, EntityType("view").Includes(EntityTypeTable))
}

func TestDocumentAdd(t *testing.T) {
	doc := NewDocument("p1")
	doc.Add(&Unit{
		Dataset: Dataset{ID: "d1"},
		Tables:  []Table{{ID: "t1"}},
		Fields:  []Field{{Name: "f1"}, {Name: "f2"}},
	})

	assert.Len(t, doc.Datasets, 1)
	assert.Len(t, doc.Tables, 1)
	assert.Len(t, doc.Fields, 2)
}
