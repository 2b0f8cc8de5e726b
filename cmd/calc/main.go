package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/graeme-hill/calcstuff-go/lib"
)

var printTokens = flag.Bool("tokens", false, "Print the scanned tokens instead of evaluating")

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")
	flag.Parse()

	expr, err := readExpression(flag.Args(), os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	if *printTokens {
		tokens, err := lib.Scan(expr)
		if err != nil {
			log.Fatal(err)
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return
	}

	result, err := lib.Eval(expr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(lib.FormatValue(result))
}

// readExpression joins the arguments, or reads a single line from r when
// there are none.
func readExpression(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
