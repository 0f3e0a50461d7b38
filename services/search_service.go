package services

import (
	"log"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"ifphub/helper"
	"ifphub/models"
	"ifphub/repositories"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	dateLayout     = "2006-01-02"
	maxSugerencias = 6
)

// Words too generic to suggest as search tags.
var stopWords = map[string]struct{}{
	"para": {}, "desde": {}, "hasta": {}, "sobre": {}, "entre": {},
	"tras": {}, "ante": {}, "bajo": {}, "hacia": {}, "esta": {},
	"este": {}, "estas": {}, "estos": {}, "del": {}, "las": {},
	"los": {}, "que": {}, "una": {}, "unos": {}, "unas": {},
	"como": {}, "con": {}, "sin": {}, "por": {}, "the": {},
	"and": {}, "campus": {}, "portal": {}, "noticia": {}, "noticias": {},
}

var defaultSugerencias = []string{"Eventos", "Comunidad", "Talleres", "Campus"}

var (
	wordPattern   = regexp.MustCompile(`[a-z0-9]{4,}`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText strips diacritics and lowercases, so that "Robótica"
// matches "robotica".
func NormalizeText(value string) string {
	folded, _, err := transform.String(diacriticFold, value)
	if err != nil {
		folded = value
	}
	return strings.ToLower(folded)
}

// Tokenize splits a free-text query into normalized tokens. An empty
// query yields no tokens.
func Tokenize(query string) []string {
	return strings.Fields(NormalizeText(query))
}

type SearchService interface {
	Search(params models.SearchParams) (*models.SearchResponse, error)
}

type searchService struct {
	noticiaRepo repositories.NoticiaRepository
}

func NewSearchService(noticiaRepo repositories.NoticiaRepository) SearchService {
	return &searchService{noticiaRepo: noticiaRepo}
}

// Search fetches the full corpus and recomputes the view per request.
// The corpus is dozens to low hundreds of items, so there is no index.
func (s *searchService) Search(params models.SearchParams) (*models.SearchResponse, error) {
	desde, hasta, err := parseDateRange(params.Desde, params.Hasta)
	if err != nil {
		return nil, err
	}

	noticias, fetchErr := s.noticiaRepo.GetAll()
	if fetchErr != nil {
		log.Printf("fn_get_noticia failed during search: %v", fetchErr)
		return nil, models.ErrorInternalServer{Message: "No se pudieron cargar las noticias."}
	}

	tokens := Tokenize(params.Query)
	results := Rank(noticias, tokens, desde, hasta)

	return &models.SearchResponse{
		Data:        results,
		Stats:       computeStats(results, time.Now()),
		Sugerencias: Sugerencias(noticias),
	}, nil
}

func parseDateRange(desdeRaw, hastaRaw string) (*time.Time, *time.Time, error) {
	var desde, hasta *time.Time

	if desdeRaw != "" {
		d, err := time.ParseInLocation(dateLayout, desdeRaw, time.Local)
		if err != nil {
			return nil, nil, models.ErrorValidation{Message: "Fecha 'desde' invalida"}
		}
		desde = &d
	}

	if hastaRaw != "" {
		h, err := time.ParseInLocation(dateLayout, hastaRaw, time.Local)
		if err != nil {
			return nil, nil, models.ErrorValidation{Message: "Fecha 'hasta' invalida"}
		}
		// Inclusive upper bound: end of that day.
		h = h.Add(24*time.Hour - time.Second)
		hasta = &h
	}

	return desde, hasta, nil
}

// Rank scores, filters and orders the corpus: +2 per token matching
// the titulo, +1 per token matching the descripcion; zero-score items
// drop out when tokens exist; items without a fecha drop out whenever
// a date boundary is active. Order is score desc, then fecha desc,
// with missing fechas sorting as the earliest.
func Rank(noticias []models.Noticia, tokens []string, desde, hasta *time.Time) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(noticias))

	for _, n := range noticias {
		titulo := NormalizeText(n.Titulo)
		descripcion := NormalizeText(n.Descripcion)

		score := 0
		for _, tok := range tokens {
			if strings.Contains(titulo, tok) {
				score += 2
			}
			if strings.Contains(descripcion, tok) {
				score += 1
			}
		}

		if len(tokens) > 0 && score == 0 {
			continue
		}

		if desde != nil || hasta != nil {
			if n.FechaHora == nil {
				continue
			}
			if desde != nil && n.FechaHora.Before(*desde) {
				continue
			}
			if hasta != nil && n.FechaHora.After(*hasta) {
				continue
			}
		}

		texto := strings.TrimSpace(n.Titulo + " " + n.Descripcion)
		results = append(results, models.SearchResult{
			Noticia:    n,
			Score:      score,
			LecturaMin: helper.EstimateReadingTime(texto),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if len(tokens) > 0 && results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Timestamp() > results[j].Timestamp()
	})

	return results
}

func computeStats(results []models.SearchResult, now time.Time) models.SearchStats {
	stats := models.SearchStats{Resultados: len(results)}

	for _, r := range results {
		if r.FechaHora == nil {
			continue
		}

		y1, m1, d1 := r.FechaHora.Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			stats.Hoy++
		}

		if now.Sub(*r.FechaHora) <= 7*24*time.Hour {
			stats.Semana++
		}
	}

	return stats
}

// Sugerencias extracts the six most frequent meaningful words across
// the corpus as quick search tags, with a static fallback when the
// corpus yields none.
func Sugerencias(noticias []models.Noticia) []string {
	bag := make(map[string]int)

	for _, n := range noticias {
		text := NormalizeText(n.Titulo + " " + n.Descripcion)
		for _, word := range wordPattern.FindAllString(text, -1) {
			if _, skip := stopWords[word]; skip {
				continue
			}
			if digitsPattern.MatchString(word) {
				continue
			}
			bag[word]++
		}
	}

	words := make([]string, 0, len(bag))
	for word := range bag {
		words = append(words, word)
	}

	sort.Slice(words, func(i, j int) bool {
		if bag[words[i]] != bag[words[j]] {
			return bag[words[i]] > bag[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > maxSugerencias {
		words = words[:maxSugerencias]
	}

	if len(words) == 0 {
		return defaultSugerencias
	}

	labels := make([]string, len(words))
	for i, word := range words {
		labels[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return labels
}
