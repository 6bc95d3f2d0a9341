/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	NodeTmpl   *template.Template
	EdgeTmpl   *template.Template
	StyleTmpl  *template.Template
	StyleEdge  *template.Template
	WithStyles bool
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM and a Writer. If withStyles is set, the inline style of every
// element is drawn as a record attached to the element.
func ToGraphViz(doc *html.Node, w io.Writer, withStyles bool) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", WithStyles: withStyles}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Parse(styleTmpl))
	gparams.StyleEdge = template.Must(template.New("styleedge").Parse(styleEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 4096)
	if err = nodes(doc, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Print returns an indented text representation of the element tree under
// doc. Every element is printed with its tag name and, if present, its
// inline style. Text nodes are printed in shortened form; whitespace-only
// text is omitted.
func Print(doc *html.Node) string {
	printer := tp.New()
	printNode(printer, doc)
	return printer.String()
}

func printNode(printer tp.Tree, n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			label := "<" + ch.Data + ">"
			if s, ok := dom.Attr(ch, "style"); ok {
				label += " style=" + fmt.Sprintf("%q", s)
			}
			if ch.FirstChild == nil {
				printer.AddNode(label)
			} else {
				printNode(printer.AddBranch(label), ch)
			}
		case html.TextNode:
			if strings.TrimSpace(ch.Data) != "" {
				printer.AddNode(fmt.Sprintf("%q", shorten(strings.TrimSpace(ch.Data))))
			}
		case html.CommentNode:
			printer.AddNode("<!-- " + shorten(ch.Data) + " -->")
		case html.DocumentNode:
			printNode(printer, ch)
		}
	}
}

type node struct {
	N    *html.Node
	Name string
}

func nodes(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	name := nodeName(n, dict)
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	if !gparams.WithStyles {
		return nil
	}
	s, ok := dom.Attr(n, "style")
	if !ok {
		return nil
	}
	decls, err := style.Split(s)
	if err != nil {
		return err
	}
	st := styleRecord{Name: name, Props: decls.Properties()}
	if err := gparams.StyleTmpl.Execute(w, st); err != nil {
		return err
	}
	return gparams.StyleEdge.Execute(w, st)
}

func nodeName(n *html.Node, dict map[*html.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

type styleRecord struct {
	Name  string
	Props []style.KeyValue
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *html.Node, n2 *html.Node, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) error {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

func shortText(n *html.Node) string {
	s := "\"\\\"" + shorten(n.Data) + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// shorten cuts s after 10 runes.
func shorten(s string) string {
	if utf8.RuneCountInString(s) <= 10 {
		return s
	}
	return string([]rune(s)[:10]) + "..."
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.Type 1 }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .N.Type 3 }}
{{ .Name }}	[ label={{ printf "%q" .N.Data }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label="#" shape=point ] ;
{{ end }}
`

const styleTmpl = `{{ .Name }}_style [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">style</font></td></tr>
      {{ range .Props }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const styleEdgeTmpl = `{{ .Name }} -> {{ .Name }}_style [dir=none weight=1 style="dashed"] ;
`
