/*

Submat inspects and manages substitution matrices.

List the matrices of the embedded database:

	submat list

Show a matrix together with its shape and symmetry:

	submat show BLOSUM62

Report scoring statistics for uniform background frequencies:

	submat stats BLOSUM62

Matrices can also be kept in a writable database file:

	submat import custom.db MYMATRIX mymatrix.mat
	submat -d custom.db show MYMATRIX

*/
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/davegrays/biotite/align"
	"github.com/davegrays/biotite/matrixdb"
)

// Logger settings.
var log = logging.MustGetLogger("submat")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	app = kingpin.New("submat", "substitution matrix inspector")

	dbFile   = app.Flag("db", "use a matrix database file instead of the embedded database").Short('d').String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")

	listCmd = app.Command("list", "list all matrix names")

	showCmd  = app.Command("show", "show a matrix")
	showName = showCmd.Arg("name", "matrix name").Required().String()
	showRaw  = showCmd.Flag("raw", "print the matrix text instead of a table").Bool()

	statsCmd  = app.Command("stats", "report expected score, lambda and relative entropy")
	statsName = statsCmd.Arg("name", "matrix name").Required().String()

	exportCmd  = app.Command("export", "write matrix text to a file")
	exportName = exportCmd.Arg("name", "matrix name").Required().String()
	exportFile = exportCmd.Arg("file", "output file").Required().String()

	importCmd  = app.Command("import", "store a matrix file in a database file")
	importDB   = importCmd.Arg("dbfile", "matrix database file").Required().String()
	importName = importCmd.Arg("name", "matrix name").Required().String()
	importFile = importCmd.Arg("file", "matrix file in NCBI format").Required().ExistingFile()
)

// resolver returns the matrix database to read from: the embedded one
// by default, a bolt store if -d was given. The returned closer is nil
// for the embedded database.
func resolver() (matrixdb.Resolver, func() error) {
	if *dbFile == "" {
		return matrixdb.Default, nil
	}
	store, err := matrixdb.OpenBoltStore(*dbFile)
	if err != nil {
		log.Fatal("Error opening matrix database: ", err)
	}
	return store, store.Close
}

// readMatrix resolves a name and parses the matrix with the alphabets
// from the file.
func readMatrix(db matrixdb.Resolver, name string) *align.SubstitutionMatrix {
	text, err := db.Read(name)
	if err != nil {
		log.Fatal(err)
	}
	sm, err := align.ParseMatrix(text)
	if err != nil {
		log.Fatalf("Error parsing matrix %q: %v", name, err)
	}
	return sm
}

func list(db matrixdb.Resolver) {
	names, err := db.List()
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

func show(db matrixdb.Resolver, name string) {
	sm := readMatrix(db, name)
	if *showRaw {
		fmt.Println(sm)
	} else {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader(append([]string{""}, sm.Alphabet2().Symbols()...))
		table.SetBorder(false)
		table.SetCenterSeparator("")
		for i, symbol := range sm.Alphabet1().Symbols() {
			row := []string{symbol}
			for _, s := range sm.ScoreTable()[i] {
				row = append(row, fmt.Sprintf("%d", s))
			}
			table.Append(row)
		}
		table.Render()
	}
	m, n := sm.Shape()
	log.Noticef("shape: (%d, %d), symmetric: %v", m, n, sm.IsSymmetric())
}

func stats(db matrixdb.Resolver, name string) {
	sm := readMatrix(db, name)
	m, n := sm.Shape()
	freq1 := uniform(m)
	freq2 := uniform(n)

	expected, err := align.ExpectedScore(sm, freq1, freq2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("expected score: %.4f\n", expected)

	lambda, err := align.Lambda(sm, freq1, freq2)
	if err != nil {
		log.Fatal("Lambda is undefined: ", err)
	}
	fmt.Printf("lambda: %.4f\n", lambda)

	h, err := align.RelativeEntropy(sm, freq1, freq2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("relative entropy: %.4f bits\n", h)
}

func uniform(n int) []float64 {
	freq := make([]float64, n)
	for i := range freq {
		freq[i] = 1 / float64(n)
	}
	return freq
}

func export(db matrixdb.Resolver, name, file string) {
	sm := readMatrix(db, name)
	f, err := os.Create(file)
	if err != nil {
		log.Fatal("Error creating output file: ", err)
	}
	defer f.Close()
	if _, err := f.WriteString(sm.String() + "\n"); err != nil {
		log.Fatal("Error writing matrix: ", err)
	}
	log.Noticef("Wrote %s to %s", name, file)
}

func importMatrix(dbfile, name, file string) {
	text, err := os.ReadFile(file)
	if err != nil {
		log.Fatal(err)
	}
	// validate before storing
	if _, err := align.ParseMatrix(string(text)); err != nil {
		log.Fatalf("Error parsing matrix %q: %v", file, err)
	}
	store, err := matrixdb.OpenBoltStore(dbfile)
	if err != nil {
		log.Fatal("Error opening matrix database: ", err)
	}
	defer store.Close()
	if err := store.Put(name, string(text)); err != nil {
		log.Fatal(err)
	}
	log.Noticef("Stored %s in %s", name, dbfile)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "submat")
	logging.SetLevel(level, "matrixdb")

	db, closer := resolver()
	if closer != nil {
		defer closer()
	}

	switch command {
	case listCmd.FullCommand():
		list(db)
	case showCmd.FullCommand():
		show(db, *showName)
	case statsCmd.FullCommand():
		stats(db, *statsName)
	case exportCmd.FullCommand():
		export(db, *exportName, *exportFile)
	case importCmd.FullCommand():
		importMatrix(*importDB, *importName, *importFile)
	}
}
