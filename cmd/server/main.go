package main

import "gym_club_backend/internal/cli"

func main() {
	cli.Execute()
}
