// seed importa o histórico de compras a partir de um CSV exportado da planilha
// de controle (separado por ';', codificação ISO-8859-1, valores no formato
// brasileiro "1.234,56").
//
// Uso: go run ./cmd/seed [caminho/compras.csv]
// Por padrão procura compras.csv no diretório atual.
//
// Colunas esperadas (com cabeçalho):
//
//	produto;modelo;armazenamento;cor;data_compra;data_entrega;pedido;
//	valor_pago;frete;desconto_antecipado;cashback;pontos;milheiro;
//	pontos_por_real;clube_loja;conta;status;pontos_recebidos;unidades
//
// Cada linha cria o produto (se ainda não visto) e registra a compra pelo
// caso de uso do ciclo de vida, para que o razão de estoque saia consistente
// com os status importados.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/revendapp/revenda-api/internal/application/dto"
	apppurchase "github.com/revendapp/revenda-api/internal/application/purchase"
	"github.com/revendapp/revenda-api/internal/application/usecase"
	"github.com/revendapp/revenda-api/internal/infrastructure/postgres"
	"github.com/revendapp/revenda-api/pkg/config"
)

func main() {
	csvPath := "compras.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	purchaseUC := apppurchase.NewUseCase(txRunner, productRepo, purchaseRepo)

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 19

	// Cabeçalho
	if _, err := r.Read(); err != nil {
		fmt.Fprintf(os.Stderr, "Ler cabeçalho: %v\n", err)
		os.Exit(1)
	}

	// Produto repetido na planilha vira uma única linha de catálogo.
	productIDs := make(map[string]string)
	var products, purchases, skipped int

	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "linha %d: %v (ignorada)\n", line, err)
			skipped++
			continue
		}

		name, model, storage, color := field(rec, 0), field(rec, 1), field(rec, 2), field(rec, 3)
		if name == "" {
			skipped++
			continue
		}
		key := strings.ToLower(name + "|" + model + "|" + storage + "|" + color)
		productID, ok := productIDs[key]
		if !ok {
			p, err := productUC.Create(ctx, dto.CreateProductRequest{
				Name: name, Model: model, Storage: storage, Color: color,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "linha %d: criar produto: %v\n", line, err)
				os.Exit(1)
			}
			productID = p.ID
			productIDs[key] = productID
			products++
		}

		in := dto.CreatePurchaseRequest{
			ProductID:       productID,
			PurchaseDate:    field(rec, 4),
			OrderNumber:     field(rec, 6),
			PaidValue:       parseDecimalBR(field(rec, 7)),
			Freight:         parseDecimalBR(field(rec, 8)),
			AdvanceDiscount: parseDecimalBR(field(rec, 9)),
			Cashback:        parseDecimalBR(field(rec, 10)),
			Points:          parseInt(field(rec, 11)),
			Thousand:        parseDecimalBR(field(rec, 12)),
			PointsPerReal:   parseDecimalBR(field(rec, 13)),
			ClubAndStore:    field(rec, 14),
			Account:         field(rec, 15),
			Units:           parseInt(field(rec, 18)),
		}
		if d := field(rec, 5); d != "" {
			in.DeliveryDate = &d
		}
		if s := strings.ToUpper(field(rec, 16)); s != "" {
			in.Status = &s
		}
		if pr := parseBool(field(rec, 17)); pr {
			in.PointsReceived = &pr
		}

		if _, err := purchaseUC.Create(ctx, "seed", in); err != nil {
			fmt.Fprintf(os.Stderr, "linha %d: registrar compra: %v\n", line, err)
			os.Exit(1)
		}
		purchases++
	}

	fmt.Printf("Importados %d produtos e %d compras de %s (%d linhas ignoradas)\n",
		products, purchases, csvPath, skipped)
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// parseDecimalBR aceita "1.234,56" e também "1234.56". Vazio vale zero.
func parseDecimalBR(s string) decimal.Decimal {
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseInt(s string) int64 {
	s = strings.ReplaceAll(s, ".", "")
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sim", "s", "true", "1", "x":
		return true
	}
	return false
}
