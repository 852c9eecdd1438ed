package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmreilly/staffing-planner-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// PlanCSV handles CSV file uploads for planning. The census file is
// required with date and census columns; the resources file is optional
// with role, available_fte, and leave_fte columns. Ratios arrive as a form
// value in "ROLE:ratio|ROLE:ratio" form. Season rules and shift
// definitions come from the settings file.
func (h *Handler) PlanCSV(c *gin.Context) {
	censusFile, _ := c.FormFile("census_file")
	resourcesFile, _ := c.FormFile("resources_file")

	if censusFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "census_file is required"})
		return
	}

	census, err := parseCensusCSV(censusFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ratios, err := parseRatios(c.PostForm("ratios"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var resources []models.ResourceRecord
	if resourcesFile != nil {
		resources, err = parseResourcesCSV(resourcesFile)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := models.PlanInput{
		Census:    census,
		Ratios:    ratios,
		Resources: resources,
	}

	result, err := h.runPlan(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(census), len(ratios))
	h.RecordRun(c, result)

	c.JSON(http.StatusOK, gin.H{
		"csv":     reconciliationCSV(result.Reconciliation),
		"summary": result.Summary,
	})
}

func parseCensusCSV(file *multipart.FileHeader) ([]models.CensusRecord, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open census file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read census header")
	}
	cols := columnIndex(header)
	dateCol, okDate := cols["date"]
	censusCol, okCensus := cols["census"]
	if !okDate || !okCensus {
		return nil, fmt.Errorf("census file must contain date and census columns")
	}

	var records []models.CensusRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		date, err := models.ParseDate(record[dateCol])
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[censusCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid census value %q for %s", record[censusCol], date)
		}
		records = append(records, models.CensusRecord{Date: date, ProjectedCensus: value})
	}
	return records, nil
}

func parseResourcesCSV(file *multipart.FileHeader) ([]models.ResourceRecord, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open resources file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read resources header")
	}
	cols := columnIndex(header)
	roleCol, okRole := cols["role"]
	availCol, okAvail := cols["available_fte"]
	if !okRole || !okAvail {
		return nil, fmt.Errorf("resources file must contain role and available_fte columns")
	}

	var records []models.ResourceRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		available, _ := strconv.ParseFloat(strings.TrimSpace(record[availCol]), 64)
		var leave float64
		if leaveCol, ok := cols["leave_fte"]; ok {
			leave, _ = strconv.ParseFloat(strings.TrimSpace(record[leaveCol]), 64)
		}
		records = append(records, models.ResourceRecord{
			Role:         strings.TrimSpace(record[roleCol]),
			AvailableFTE: available,
			LeaveFTE:     leave,
		})
	}
	return records, nil
}

// parseRatios parses "RN:5|NA:8" into staffing ratios, preserving order
func parseRatios(raw string) ([]models.StaffingRatio, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("ratios form value is required, e.g. RN:5|NA:8")
	}
	var ratios []models.StaffingRatio
	for _, part := range strings.Split(raw, "|") {
		rp := strings.SplitN(part, ":", 2)
		if len(rp) != 2 {
			return nil, fmt.Errorf("invalid ratio entry %q", part)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rp[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ratio value in %q", part)
		}
		ratios = append(ratios, models.StaffingRatio{
			Role:             strings.TrimSpace(rp[0]),
			PatientsPerStaff: value,
		})
	}
	return ratios, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func reconciliationCSV(rows []models.ReconciliationRow) string {
	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"date", "season", "role", "shift", "required", "available", "delta", "classification"})

	for _, r := range rows {
		writer.Write([]string{
			r.Date.String(),
			r.Season,
			r.Role,
			r.ShiftName,
			strconv.Itoa(r.Required),
			fmt.Sprintf("%.2f", r.Available),
			fmt.Sprintf("%.2f", r.Delta),
			r.Classification,
		})
	}
	writer.Flush()
	return out.String()
}
