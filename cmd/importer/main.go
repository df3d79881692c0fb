// Command importer loads books.csv and borrowers.csv into the circulation database.
package main

import (
	"context"
	"flag"
	stdLog "log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Astemirdum/library-circulation/circulation/app"
	"github.com/Astemirdum/library-circulation/circulation/config"
)

func main() {
	booksPath := flag.String("books", "books.csv", "path to books.csv")
	borrowersPath := flag.String("borrowers", "borrowers.csv", "path to borrowers.csv")
	timeout := flag.Duration("timeout", 5*time.Minute, "import timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env loaded: ", err)
	}
	cfg := config.NewConfig()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := app.Import(ctx, cfg, *booksPath, *borrowersPath); err != nil {
		stdLog.Fatalln(err)
	}
}
