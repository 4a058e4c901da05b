package draft

import (
	"github.com/samber/lo"

	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
)

// EligibleProjects devuelve los proyectos cuyo ClientID coincide con clientID,
// preservando el orden relativo de allProjects. Filtro puro y reiniciable:
// puede invocarse en cada cambio de cliente sin estado memorizado.
func EligibleProjects(allProjects []entity.Project, clientID string) []entity.Project {
	return lo.Filter(allProjects, func(p entity.Project, _ int) bool {
		return p.ClientID == clientID
	})
}

// OnClientChanged fija el nuevo cliente del borrador y revalida el proyecto
// elegido: si ya no pertenece al nuevo cliente se restablece al centinela
// ProjectNone. Así una referencia cruzada obsoleta nunca llega al envío.
func (d Draft) OnClientChanged(newClientID string, allProjects []entity.Project) Draft {
	d.ClientID = newClientID
	if !d.HasProject() {
		return d
	}
	eligible := EligibleProjects(allProjects, newClientID)
	still := lo.ContainsBy(eligible, func(p entity.Project) bool {
		return p.ID == d.ProjectID
	})
	if !still {
		d.ProjectID = ProjectNone
	}
	return d
}
