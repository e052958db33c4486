package app

func (a *App) loadRoutes() {
	a.router.HandleFunc("POST /game", a.game.NewGame)
	a.router.HandleFunc("GET /game", a.game.Fetch)
	a.router.HandleFunc("POST /game/forfeit", a.game.Forfeit)
	a.router.HandleFunc("POST /game/{move}", a.game.MakeAMove)
}
