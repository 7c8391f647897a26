package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/TirthDesai-Ascensus/BookStore/internal/config"
	"github.com/TirthDesai-Ascensus/BookStore/internal/database"
	"github.com/TirthDesai-Ascensus/BookStore/internal/database/books"
	"github.com/TirthDesai-Ascensus/BookStore/internal/entities"
)

var sampleBooks = []entities.Book{
	{Title: "Dune", Author: "Frank Herbert", ISBN: "978-0-441-17271-9", Price: 9.99},
	{Title: "Foundation", Author: "Isaac Asimov", ISBN: "978-0-553-29335-7", Price: 8.49},
	{Title: "I, Robot", Author: "Isaac Asimov", ISBN: "978-0-553-29438-5", Price: 7.99},
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", ISBN: "978-0-261-10221-7", Price: 12.99},
	{Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", ISBN: "978-0-261-10357-3", Price: 14.50},
	{Title: "Neuromancer", Author: "William Gibson", ISBN: "978-0-441-56956-4", Price: 10.25},
	{Title: "Snow Crash", Author: "Neal Stephenson", ISBN: "978-0-553-38095-8", Price: 11.00},
	{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", ISBN: "978-0-441-47812-5", Price: 9.50},
}

// SeedCommand loads a small set of sample books into the catalog database.
type SeedCommand struct {
	DatabasePath string
	Force        bool
	Verbose      bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Force, "force", false, "Seed even if the database already contains books")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load a small set of sample books into the catalog database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Seed the default database:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Seed a specific database file, even if non-empty:\n")
		fmt.Fprintf(os.Stderr, "  %s seed -db ./catalog.db -force\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	fmt.Println("Catalog Seed")
	fmt.Println("============")

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)

	existing, err := repo.GetAllBooks()
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(existing) > 0 && !cmd.Force {
		return fmt.Errorf("database already contains %d books; use -force to seed anyway", len(existing))
	}

	seeded := 0
	for _, sample := range sampleBooks {
		book := sample
		if err := repo.CreateBook(&book); err != nil {
			return fmt.Errorf("failed to seed %q: %w", book.Title, err)
		}
		if cmd.Verbose {
			fmt.Printf("  added #%d %q by %s\n", book.ID, book.Title, book.Author)
		}
		seeded++
	}

	fmt.Printf("\nSeeded %d books into %s\n", seeded, cmd.DatabasePath)
	return nil
}
