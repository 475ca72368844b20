package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"clinique-navette-core/internal/app/config"
	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/modules/conventions/dto"
	"clinique-navette-core/internal/modules/conventions/queries"
	"clinique-navette-core/internal/shared/apperrors"
)

// designationSynonyms en-têtes acceptés pour la colonne désignation,
// par ordre de priorité (les fichiers clients varient beaucoup)
var designationSynonyms = []string{
	"designations_des_actes",
	"clinique_des_oasis",
	"radiolgie",
	"consultation",
	"designation_prestation",
	"designation",
	"prestation",
	"acte",
}

var nonNumericChars = regexp.MustCompile(`[^0-9.,\-]`)
var headerSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type ImportService struct {
	txManager   *postgres.TransactionManager
	db          *postgres.Client
	maxFileSize int64
}

func NewImportService(cfg *config.Config, db *postgres.Client, txManager *postgres.TransactionManager) *ImportService {
	return &ImportService{
		db:          db,
		txManager:   txManager,
		maxFileSize: cfg.GetImport().MaxFileSizeBytes,
	}
}

// Import lit un fichier xlsx/xls/csv de conventions et insère toutes les
// lignes valides dans une seule transaction. Les lignes ignorées sont
// remontées en avertissements numérotés; une erreur d'insertion annule
// tout l'import.
func (s *ImportService) Import(ctx context.Context, filename string, size int64, reader io.Reader, companyID, serviceID *uuid.UUID) (*dto.ImportResult, error) {
	if size > s.maxFileSize {
		return nil, apperrors.Validation("fichier trop volumineux", map[string]interface{}{
			"taille": size,
			"limite": s.maxFileSize,
		})
	}

	var records [][]string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		records, err = readSpreadsheet(reader)
	case ".csv":
		records, err = readCSV(reader)
	default:
		return nil, apperrors.Validation("format de fichier non supporté (xlsx, xls ou csv attendu)", map[string]interface{}{
			"fichier": filename,
		})
	}
	if err != nil {
		return nil, apperrors.Validation("fichier illisible", map[string]interface{}{
			"message": err.Error(),
		})
	}

	if len(records) < 2 {
		return nil, apperrors.Validation("le fichier ne contient aucune ligne de données", nil)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = slugHeader(h)
	}

	abrv := "UNKNOWN"
	if companyID != nil {
		if err := s.db.QueryRow(ctx, queries.ConventionQueries.CompanyAbbreviation, *companyID).Scan(&abrv); err != nil {
			abrv = "UNKNOWN"
		}
	}

	result := &dto.ImportResult{Warnings: make([]string, 0)}

	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		counter := -1
		for i, record := range records[1:] {
			rowNum := i + 2 // ligne dans le fichier, en-tête comprise
			row := mapRow(headers, record)
			if rowIsEmpty(row) {
				continue
			}
			counter++

			designation := findDesignation(row)
			if designation == "" {
				result.Skipped++
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Ligne %d: désignation manquante, ligne ignorée", rowNum))
				continue
			}

			code := row["code"]
			if code == "" {
				code = generateCode(abrv, serviceID, counter)
			}

			montantHT, warn := convertToNumeric(row["montant_ht"])
			appendWarn(result, rowNum, "montant_ht", warn)
			montantTTC, warn := convertToNumeric(row["montant_global_ttc"])
			appendWarn(result, rowNum, "montant_global_ttc", warn)
			priseEntreprise, warn := convertToNumeric(row["montant_prise_charge_entreprise"])
			appendWarn(result, rowNum, "montant_prise_charge_entreprise", warn)
			priseBeneficiaire, warn := convertToNumeric(row["montant_prise_charge_beneficiaire"])
			appendWarn(result, rowNum, "montant_prise_charge_beneficiaire", warn)

			err := tx.Exec(ctx, `
				INSERT INTO convention (
					service_id, company_id, code, designation_prestation,
					montant_ht, montant_global_ttc,
					montant_prise_charge_entreprise, montant_prise_charge_beneficiaire
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, serviceID, companyID, code, designation,
				montantHT, montantTTC, priseEntreprise, priseBeneficiaire)
			if err != nil {
				return fmt.Errorf("ligne %d: %w", rowNum, err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erreur import conventions: %w", err)
	}

	return result, nil
}

func readSpreadsheet(reader io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("classeur sans feuille")
	}
	return f.GetRows(sheets[0])
}

func readCSV(reader io.Reader) ([][]string, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// slugHeader normalise un en-tête de colonne: minuscules, caractères
// non alphanumériques remplacés par un underscore
func slugHeader(header string) string {
	slug := strings.ToLower(strings.TrimSpace(header))
	slug = headerSlugChars.ReplaceAllString(slug, "_")
	return strings.Trim(slug, "_")
}

func mapRow(headers []string, record []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(record) {
			row[h] = strings.TrimSpace(record[i])
		} else {
			row[h] = ""
		}
	}
	return row
}

func rowIsEmpty(row map[string]string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

// findDesignation cherche la désignation parmi les en-têtes connus
func findDesignation(row map[string]string) string {
	for _, key := range designationSynonyms {
		if v, ok := row[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func generateCode(abrv string, serviceID *uuid.UUID, counter int) string {
	service := "NOSERVICE"
	if serviceID != nil {
		service = serviceID.String()
	}
	return fmt.Sprintf("%s_%s_%d", abrv, service, counter)
}

// convertToNumeric tolère les formats client: virgule décimale,
// symboles monétaires, espaces. Retourne nil pour vide ou illisible;
// le second retour porte un avertissement éventuel.
func convertToNumeric(value string) (*decimal.Decimal, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ""
	}

	if d, err := decimal.NewFromString(value); err == nil {
		return &d, ""
	}

	// Formule non calculée, on ne devine pas sa valeur
	if strings.HasPrefix(value, "=") {
		return nil, fmt.Sprintf("formule non calculée ignorée (%s)", value)
	}

	cleaned := nonNumericChars.ReplaceAllString(value, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Sprintf("valeur non numérique ignorée (%s)", value)
	}
	return &d, ""
}

func appendWarn(result *dto.ImportResult, rowNum int, field, warn string) {
	if warn == "" {
		return
	}
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("Ligne %d: %s: %s", rowNum, field, warn))
}
