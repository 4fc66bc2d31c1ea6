// Package importer carrega o export CSV do Typebot para dentro do CRM.
// Ao contrário do webhook, duplicados são pulados, não atualizados.
package importer

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"strings"

	"github.com/grautech/leadpipe/internal/normalize"
	"github.com/grautech/leadpipe/internal/usecase"
)

type Importer struct {
	Ingest *usecase.IngestLeadUseCase
}

func NewImporter(ingest *usecase.IngestLeadUseCase) *Importer {
	return &Importer{Ingest: ingest}
}

type Summary struct {
	Created int
	Skipped int
	Failed  int
}

// Run processa o CSV linha a linha. Linha ruim não derruba o import:
// conta como falha e segue.
func (i *Importer) Run(ctx context.Context, r io.Reader) (Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports do Typebot variam de largura

	header, err := reader.Read()
	if err != nil {
		return Summary{}, err
	}

	var summary Summary

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("⚠️ Linha ignorada (CSV malformado): %v", err)
			summary.Failed++
			continue
		}

		row := asRow(header, record)

		name := strings.TrimSpace(row["nome"])
		if name == "" {
			log.Println("⚠️ Linha sem nome, pulando")
			summary.Skipped++
			continue
		}

		sub := normalize.Submission{
			Nome:             name,
			Email:            strings.TrimSpace(row["email"]),
			Telefone:         strings.TrimSpace(row["telefone"]),
			Localizacao:      row["localizacao"],
			OutraLocalizacao: row["outra_localizacao"],
			Capital:          row["capital"],
			PerfilOperador:   row["perfil_operador"],
			OrigemLead:       row["origem_lead"],
			Atracao:          row["atracao"],
			VisaoCliente:     row["visao_cliente"],
			Prazo:            row["prazo"],
			Confirmacao:      row["confirmacao"],
			SubmittedAt:      submittedAt(row),
		}

		output, err := i.Ingest.Execute(ctx, sub, usecase.IngestOptions{
			UpdateExisting: false,
			OriginLabel:    "Importação CSV",
			ExtraTags:      atracaoTags(row["atracao"]),
			Notes:          buildImportNotes(header, row),
		})
		if err != nil {
			log.Printf("❌ Falha ao importar %q: %v", name, err)
			summary.Failed++
			continue
		}

		if output.Skipped {
			log.Printf("↩️ Lead já existe, pulando: %s", name)
			summary.Skipped++
		} else {
			summary.Created++
		}
	}

	return summary, nil
}

func asRow(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, key := range header {
		if i < len(record) {
			row[key] = record[i]
		}
	}
	return row
}

// submittedAt tolera as várias grafias de cabeçalho dos exports.
func submittedAt(row map[string]string) string {
	for _, key := range []string{"Submitted at", "submitted_at", "Criado em"} {
		if v := strings.TrimSpace(row[key]); v != "" {
			return v
		}
	}
	return ""
}

// atracaoTags: o campo atracao vira tags (lista separada por vírgula),
// todas com a cor neutra do import.
func atracaoTags(atracao string) []normalize.TagSuggestion {
	var tags []normalize.TagSuggestion
	for _, name := range strings.Split(atracao, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tags = append(tags, normalize.TagSuggestion{Name: name, Color: "#64748b"})
	}
	return tags
}

// buildImportNotes junta a visão do cliente e as colunas extras do export
// (FAQ, Mapeamento, confirmação, Revisão) num bloco de notas, na ordem das
// colunas do arquivo.
func buildImportNotes(header []string, row map[string]string) string {
	var parts []string
	if v := row["visao_cliente"]; strings.TrimSpace(v) != "" {
		parts = append(parts, "Visão Cliente: "+strings.TrimSpace(v))
	}

	for _, key := range header {
		value := strings.TrimSpace(row[key])
		if value == "" {
			continue
		}
		if strings.HasPrefix(key, "FAQ") || strings.Contains(key, "Mapeamento") ||
			key == "confirmacao" || strings.Contains(key, "Revisão") {
			parts = append(parts, key+": "+value)
		}
	}

	return strings.Join(parts, "\n")
}
