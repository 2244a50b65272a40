// @title           Contest API
// @version         1.0
// @description     API конкурсов и голосований: конкурсы, награды, участие, голоса, медиа и уведомления.
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "contest_backend/internal/app"

func main() {
	app.Run()
}
