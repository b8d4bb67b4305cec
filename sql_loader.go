// sql_loader.go builds tables from SQL query results, for data that lives
// in a warehouse instead of on disk.
package dataplot

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDSN opens a database handle over the MySQL wire protocol, which also
// covers ClickHouse's MySQL port. Query logging is kept silent.
func OpenDSN(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("dataplot: cannot connect: %w", err)
	}
	return db, nil
}

// LoadSQL runs the query and shapes the result set into a table. Column
// order is the sorted result column names; the driver decides cell types,
// so integers, floats and times become numeric columns (times as Unix
// seconds) and everything else categorical.
func LoadSQL(db *gorm.DB, query string) (*Table, error) {
	rows := []map[string]interface{}{}
	if tx := db.Raw(query).Scan(&rows); tx.Error != nil {
		return nil, fmt.Errorf("dataplot: query failed: %w", tx.Error)
	}
	return tableFromRows(rows)
}

// tableFromRows converts scanned row maps to a table. A column is numeric
// when every non-nil cell carries a numeric (or time) driver value.
func tableFromRows(rows []map[string]interface{}) (*Table, error) {
	names := map[string]bool{}
	for _, row := range rows {
		for name := range row {
			names[name] = true
		}
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	cols := make([]*Column, len(ordered))
	for j, name := range ordered {
		numeric := true
		for _, row := range rows {
			v, ok := row[name]
			if !ok || v == nil {
				continue
			}
			if _, isNum := numericCell(v); !isNum {
				numeric = false
				break
			}
		}

		if numeric {
			nums := make([]float64, len(rows))
			for i, row := range rows {
				v, ok := row[name]
				if !ok || v == nil {
					nums[i] = math.NaN()
					continue
				}
				nums[i], _ = numericCell(v)
			}
			cols[j] = NewNumeric(name, nums)
			continue
		}

		strs := make([]string, len(rows))
		missing := make([]bool, len(rows))
		for i, row := range rows {
			v, ok := row[name]
			if !ok || v == nil {
				missing[i] = true
				continue
			}
			strs[i] = fmt.Sprint(v)
		}
		cols[j] = NewCategorical(name, strs, missing)
	}
	return NewTable(cols...)
}

func numericCell(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case time.Time:
		return float64(x.Unix()), true
	}
	return 0, false
}
