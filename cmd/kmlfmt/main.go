// Command kmlfmt reads a KML document and writes it back out in schema
// order, optionally converting it to another KML version.
package main

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-kml"
)

const (
	flagLenient        = "lenient"
	flagStrictElements = "strict-elements"
	flagTargetVersion  = "target-version"
	flagOutput         = "output"
	flagVerbose        = "verbose"
	flagKeepGx         = "keep-gx"
	flagIndent         = "indent"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "kmlfmt [file]",
		Short:        "Rewrite a KML document in canonical form",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	f := cmd.Flags()
	f.Bool(flagLenient, false, "tolerate unknown namespaces and elements outside the document's version")
	f.Bool(flagStrictElements, false, "fail on elements no reader or extension knows")
	f.String(flagTargetVersion, "", `KML version to write, "2.1" or "2.2" (default: the input's)`)
	f.StringP(flagOutput, "o", "", "output file (default: stdout)")
	f.BoolP(flagVerbose, "v", false, "log debug output to stderr")
	f.Bool(flagKeepGx, true, "carry Google gx: extension elements through")
	f.Int(flagIndent, 2, "spaces per nesting level, 0 for compact output")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	lenient, _ := flags.GetBool(flagLenient)
	strict, _ := flags.GetBool(flagStrictElements)
	target, _ := flags.GetString(flagTargetVersion)
	output, _ := flags.GetString(flagOutput)
	verbose, _ := flags.GetBool(flagVerbose)
	keepGx, _ := flags.GetBool(flagKeepGx)
	indent, _ := flags.GetInt(flagIndent)

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	opts := []kml.Option{kml.WithLogger(log)}
	if lenient {
		opts = append(opts, kml.Lenient())
	}
	if strict {
		opts = append(opts, kml.DisallowUnknownElements())
	}
	if keepGx {
		opts = append(opts, kml.WithExtensions(&kml.NamespaceExtension{
			Namespace: kml.GxNamespace,
			Prefix:    "gx",
			Default:   kml.LevelObject,
		}))
	}
	var encOpts []kml.Option
	if indent > 0 {
		encOpts = append(encOpts, kml.Indent(indent))
	}
	if target != "" {
		v, err := kml.ParseVersion(target)
		if err != nil {
			return err
		}
		encOpts = append(encOpts, kml.TargetVersion(v))
	}

	in := cmd.InOrStdin()
	name := "<stdin>"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in, name = f, args[0]
	}

	doc, err := kml.NewDecoder(in, opts...).Decode()
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	fields := log.WithFields(logrus.Fields{"input": name, "version": doc.Version.Short()})
	if ff := kml.FieldsOf(doc.Feature); ff != nil && ff.Name != "" {
		fields = fields.WithField("feature", ff.Name)
	}
	fields.Debug("document read")

	var buf bytes.Buffer
	if err := kml.NewEncoder(&buf, append(opts, encOpts...)...).Encode(doc); err != nil {
		return errors.Wrap(err, "writing document")
	}
	buf.WriteByte('\n')

	var out io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer f.Close()
		out = f
	}
	_, err = buf.WriteTo(out)
	return errors.Wrap(err, "writing output")
}
