package handlers

import "net/http"

// AgentManifest serves the static descriptor at /.well-known/agent.json.
func (a *App) AgentManifest(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Manifest)
}
