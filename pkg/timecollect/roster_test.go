package timecollect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
)

func TestParseEmployees(t *testing.T) {
	rows := [][]string{
		{"ID", "氏名", "ニックネーム", "チーム", "シートID"}, // header, invalid id
		{"1", "Ichiro Sato", "ichiro", "3D", "sheet-1"},
		{"0.00", "0.00", "0.00", "0.00", "0.00"}, // padded blank row
		{},
		{"2", "Jiro Suzuki", "jiro"}, // short
		{" 3 ", "Saburo Ito", "saburo", "管理", "sheet-3", "extra"},
	}

	expected := []models.Employee{
		{ID: 1, Name: "Ichiro Sato", Nickname: "ichiro", Team: "3D", SpreadsheetID: "sheet-1"},
		{ID: 3, Name: "Saburo Ito", Nickname: "saburo", Team: "管理", SpreadsheetID: "sheet-3"},
	}
	assert.Equal(t, expected, ParseEmployees(rows, discardLogger()))
}

func TestParseEmployeesEmpty(t *testing.T) {
	assert.Empty(t, ParseEmployees(nil, nil))
}
