package allocation

import (
	"bytes"
	"encoding/csv"
	"io"
)

// ParseCSV parses untyped comma separated rows. There is no header row and
// rows may have a different number of columns.
func ParseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}
