package main

import (
	goflag "flag"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := newRootCommand()
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	if err := cmd.Execute(); err != nil {
		klog.ErrorS(err, "attconv failed")
		klog.Flush()
		os.Exit(1)
	}
}
