package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rakunlabs/into"
	"github.com/rakunlabs/logi"

	"github.com/rakunlabs/kuba"
	"github.com/rakunlabs/kuba/apis"
	"github.com/rakunlabs/kuba/apis/corev1"
	kubacfg "github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/internal/config"
	"github.com/rakunlabs/kuba/models"
	"github.com/rakunlabs/kuba/stream"
)

var (
	name    = "kuba"
	version = "v0.0.0"
)

func main() {
	config.Service = name + "/" + version

	into.Init(run,
		into.WithLogger(logi.InitializeLog(logi.WithCaller(false))),
		into.WithMsgf("%s [%s]", name, version),
	)
}

// ///////////////////////////////////////////////////////////////////

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var clusterCfg *kubacfg.Configuration
	if cfg.InCluster {
		clusterCfg, err = kubacfg.LoadInCluster("", "")
	} else {
		clusterCfg, err = kubacfg.LoadKubeconfig(cfg.Kubeconfig, cfg.Context)
	}
	if err != nil {
		return fmt.Errorf("failed to load cluster credentials: %w", err)
	}

	if timeout, err := cfg.RequestTimeout(); err != nil {
		return err
	} else if timeout > 0 {
		clusterCfg.Timeout = timeout
	}

	cli, err := kuba.New(clusterCfg)
	if err != nil {
		return fmt.Errorf("failed to build client: %w", err)
	}
	defer cli.Close()

	args := os.Args[1:]
	if len(args) == 0 {
		return fmt.Errorf("usage: %s <namespaces|pods|watch-pods|exec> [args]", name)
	}

	switch args[0] {
	case "namespaces":
		return listNamespaces(ctx, cli)
	case "pods":
		return listPods(ctx, cli, cfg.Namespace)
	case "watch-pods":
		return watchPods(ctx, cli, cfg.Namespace)
	case "exec":
		if len(args) < 3 {
			return fmt.Errorf("usage: %s exec <pod> <command...>", name)
		}
		return execPod(ctx, cli, cfg.Namespace, args[1], args[2:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func listNamespaces(ctx context.Context, cli *kuba.Client) error {
	resp, err := cli.Invoke(ctx, corev1.ListNamespace(apis.Options{}))
	if err != nil {
		return err
	}

	list := resp.Parsed.(*models.V1NamespaceList)
	for _, ns := range list.Items {
		phase := ""
		if ns.Status != nil && ns.Status.Phase != nil {
			phase = *ns.Status.Phase
		}
		fmt.Printf("%s\t%s\n", deref(ns.Metadata.Name), phase)
	}
	return nil
}

func listPods(ctx context.Context, cli *kuba.Client, namespace string) error {
	resp, err := cli.Invoke(ctx, corev1.ListNamespacedPod(namespace, apis.Options{}))
	if err != nil {
		return err
	}

	list := resp.Parsed.(*models.V1PodList)
	for _, pod := range list.Items {
		phase := ""
		if pod.Status != nil && pod.Status.Phase != nil {
			phase = *pod.Status.Phase
		}
		fmt.Printf("%s\t%s\n", deref(pod.Metadata.Name), phase)
	}
	return nil
}

func watchPods(ctx context.Context, cli *kuba.Client, namespace string) error {
	timeout := int64(60)
	st, err := cli.Watch(ctx, corev1.ListNamespacedPod(namespace, apis.Options{
		Watch:          true,
		TimeoutSeconds: &timeout,
		PreloadContent: models.Ptr(false),
	}))
	if err != nil {
		return err
	}
	defer st.Close()

	for ev := range st.Chan(ctx) {
		if ev.Obj == nil {
			fmt.Printf("%s\t<undecodable>\n", ev.Name)
			continue
		}
		pod := ev.Obj.(*models.V1Pod)
		fmt.Printf("%s\t%s\n", ev.Name, deref(pod.Metadata.Name))
	}
	return nil
}

func execPod(ctx context.Context, cli *kuba.Client, namespace, pod string, command []string) error {
	session, err := cli.Exec(ctx, corev1.ConnectGetNamespacedPodExec(pod, namespace, corev1.ExecOptions{
		Command: command,
		Stdout:  true,
		Stderr:  true,
	}, apis.Options{}))
	if err != nil {
		return err
	}
	defer session.Close()

	out, err := stream.Collect(session)
	if err != nil && err != io.EOF {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
