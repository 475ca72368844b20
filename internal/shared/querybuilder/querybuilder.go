// Package querybuilder compose des prédicats optionnels en une seule
// requête SQL paginée. Chaque écran de liste (fiches navette,
// conventions, patients) replie ses filtres facultatifs sur une
// requête de base au lieu de dupliquer la construction du WHERE.
package querybuilder

import (
	"strconv"
	"strings"
)

// Builder accumule des conditions AND. Les conditions s'écrivent avec
// des placeholders `?`, renumérotés en `$1..$n` au moment du Build.
type Builder struct {
	conds []string
	args  []interface{}
}

func New() *Builder {
	return &Builder{}
}

// And ajoute une condition inconditionnelle
func (b *Builder) And(cond string, args ...interface{}) *Builder {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
	return b
}

// AndIf ajoute la condition seulement si ok est vrai.
// Les filtres optionnels des listes passent tous par ici.
func (b *Builder) AndIf(ok bool, cond string, args ...interface{}) *Builder {
	if !ok {
		return b
	}
	return b.And(cond, args...)
}

// Group regroupe des conditions OR, typiquement le filtre de
// recherche libre multi-champs
type Group struct {
	conds []string
	args  []interface{}
}

func NewGroup() *Group {
	return &Group{}
}

func (g *Group) Or(cond string, args ...interface{}) *Group {
	g.conds = append(g.conds, cond)
	g.args = append(g.args, args...)
	return g
}

func (g *Group) OrIf(ok bool, cond string, args ...interface{}) *Group {
	if !ok {
		return g
	}
	return g.Or(cond, args...)
}

func (g *Group) Empty() bool {
	return len(g.conds) == 0
}

// AndGroup ajoute le groupe OR comme une seule condition AND.
// Un groupe vide est ignoré.
func (b *Builder) AndGroup(g *Group) *Builder {
	if g == nil || g.Empty() {
		return b
	}
	return b.And("("+strings.Join(g.conds, " OR ")+")", g.args...)
}

// Build assemble la requête finale. base est le SELECT ... FROM ...,
// suffix le ORDER BY / LIMIT éventuel (avec ses propres `?`).
// Les placeholders `?` sont renumérotés en `$n` dans l'ordre
// d'apparition, les args de suffix venant en dernier.
func (b *Builder) Build(base, suffix string, suffixArgs ...interface{}) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(base)

	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}

	if suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(suffix)
	}

	args := make([]interface{}, 0, len(b.args)+len(suffixArgs))
	args = append(args, b.args...)
	args = append(args, suffixArgs...)

	return renumber(sb.String()), args
}

// BuildCount assemble la requête de comptage sur les mêmes conditions
func (b *Builder) BuildCount(countBase string) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(countBase)

	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}

	args := make([]interface{}, len(b.args))
	copy(args, b.args)

	return renumber(sb.String()), args
}

// renumber remplace chaque `?` par `$1..$n` dans l'ordre d'apparition.
// Les `?` n'apparaissent jamais dans les littéraux de nos requêtes,
// le remplacement textuel suffit.
func renumber(sql string) string {
	var sb strings.Builder
	sb.Grow(len(sql) + 8)

	n := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(sql[i])
	}

	return sb.String()
}

// Pagination normalise page/perPage pour toutes les listes
type Pagination struct {
	Page    int
	PerPage int
}

func NewPagination(page, perPage, defaultPerPage, maxPerPage int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Pagination) Limit() int {
	return p.PerPage
}

// TotalPages calcule le nombre de pages pour un total donné
func (p Pagination) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	pages := int(total) / p.PerPage
	if int(total)%p.PerPage != 0 {
		pages++
	}
	return pages
}
