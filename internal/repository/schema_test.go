package repository

import (
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	v1 "github.com/shenikar/maritime_route_intel/internal/handler/http/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	varcharColumn = regexp.MustCompile(`(?m)^\s+(\w+) VARCHAR\((\d+)\)`)
	maxTag        = regexp.MustCompile(`max=(\d+)`)
)

// tableColumns возвращает ширину VARCHAR-колонок таблицы из миграции
func tableColumns(t *testing.T, schema, table string) map[string]int {
	t.Helper()
	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	require.NotEqual(t, -1, start, "table %s", table)
	body := schema[start:]
	body = body[:strings.Index(body, ");")]

	columns := make(map[string]int)
	for _, m := range varcharColumn.FindAllStringSubmatch(body, -1) {
		width, err := strconv.Atoi(m[2])
		require.NoError(t, err)
		columns[m[1]] = width
	}
	return columns
}

// dtoLimits возвращает max из тегов validate по json-именам полей
func dtoLimits(v any) map[string]int {
	limits := make(map[string]int)
	typ := reflect.TypeOf(v)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		m := maxTag.FindStringSubmatch(field.Tag.Get("validate"))
		if m == nil {
			continue
		}
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		limits[name], _ = strconv.Atoi(m[1])
	}
	return limits
}

// Любая строка, прошедшая валидацию запроса, должна помещаться в колонку
func TestSchema_ColumnsFitRequestLimits(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	cases := []struct {
		table string
		dto   any
	}{
		{table: "hazards", dto: v1.ReportHazardRequest{}},
		{table: "traffic_reports", dto: v1.ReportTrafficRequest{}},
	}

	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			columns := tableColumns(t, schema, tc.table)
			for name, limit := range dtoLimits(tc.dto) {
				width, ok := columns[name]
				if !ok {
					continue // TEXT или поле без колонки
				}
				assert.GreaterOrEqual(t, width, limit, "column %s.%s", tc.table, name)
			}
		})
	}
}
