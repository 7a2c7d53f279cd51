package comune

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/comune/comuneclient"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Identificadores das páginas de cardápio mensal no site do Comune di Napoli
var monthPages = map[int]string{
	1:  "3259",
	2:  "3260",
	3:  "3261",
	4:  "3262",
	5:  "3263",
	6:  "14357",
	9:  "3247",
	10: "3250",
	11: "3251",
	12: "3258",
}

var dayPattern = regexp.MustCompile(`(?i)(\d{1,2})\s+[a-zàèéìòù]+`)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type MenuScraper interface {
	FetchMonth(ctx context.Context, month int) (map[string]string, error)
}

type ComuneService struct {
	Client comuneclient.Client
}

func New(client comuneclient.Client) MenuScraper {
	return &ComuneService{Client: client}
}

// FetchMonth baixa e interpreta a página do mês. O resultado usa o dia sem zero
// à esquerda como chave, como em menu-data.json.
func (s *ComuneService) FetchMonth(ctx context.Context, month int) (map[string]string, error) {
	pageID, ok := monthPages[month]
	if !ok {
		return nil, domain.NewMenuError(domain.ErrInvalidMonth, domain.ErrCodeInvalidMonth, strconv.Itoa(month))
	}

	body, err := s.Client.GetMenuPage(ctx, pageID)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao baixar página %s do Comune", pageID)
	}

	days, err := ParseMenuPage(body)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"month":   month,
		"page_id": pageID,
		"days":    len(days),
	}).Info("comune: página de cardápio interpretada")

	return days, nil
}

// ParseMenuPage extrai os pares dia/cardápio das linhas de table.viewTable
func ParseMenuPage(body []byte) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar HTML do Comune")
	}

	days := make(map[string]string)
	doc.Find("table.viewTable tr").Each(func(_ int, tr *goquery.Selection) {
		dateCell := tr.Find("div.viewTableHCCellText").First()
		menuCell := tr.Find("div.viewTableCellText").First()
		if dateCell.Length() == 0 || menuCell.Length() == 0 {
			return
		}

		dateText := strings.ToLower(strings.TrimSpace(dateCell.Text()))
		match := dayPattern.FindStringSubmatch(dateText)
		if match == nil {
			return
		}

		day, err := strconv.Atoi(match[1])
		if err != nil || day < 1 || day > 31 {
			return
		}

		menu := strings.TrimSpace(menuCell.Text())
		if menu == "" {
			return
		}

		days[strconv.Itoa(day)] = menu
	})

	return days, nil
}
