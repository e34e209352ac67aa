package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// SaveColumn writes the values of a series to a file, one value per line.
// This is the plain-column format consumed by external plotting tools.
func SaveColumn(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for _, v := range series.Values {
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}

// SaveScalar writes a single named value to a file.
func SaveScalar(value float64, filename string) error {
	return os.WriteFile(filename,
		[]byte(strconv.FormatFloat(value, 'f', -1, 64)+"\n"), 0644)
}

// LoadColumn reads a plain column file (one value per line) into a series
// named after the file. Blank lines are skipped.
func LoadColumn(filename string) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New("no valid data found in file")
	}

	return NewNamed(filename, values), nil
}

// SaveCSV saves a series to a CSV file with an index column.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	name := series.Name
	if name == "" {
		name = "y"
	}
	writer.WriteString("index," + name + "\n")

	for i, v := range series.Values {
		writer.WriteString(strconv.Itoa(i))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}

// LoadCSVColumn loads a named column from a CSV file as a series. If column
// is empty the last column is used.
func LoadCSVColumn(filename, column string) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	valueIdx := -1
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			valueIdx = i
			break
		}
	}
	if valueIdx == -1 {
		if column != "" {
			return nil, errors.New("column " + column + " not found in " + filename)
		}
		valueIdx = len(header) - 1
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			continue
		}
		valStr := strings.TrimSpace(record[valueIdx])
		if valStr == "" || valStr == "NA" || valStr == "NaN" {
			continue
		}
		v, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // skip non-numeric rows
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return NewNamed(column, values), nil
}
