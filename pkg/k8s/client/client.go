/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package client creates Kubernetes clients for ConfigMap inputs and outputs.
package client

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// EnvKubeconfig overrides the kubeconfig location.
const EnvKubeconfig = "KUBECONFIG"

var (
	clientOnce   sync.Once
	cachedClient *kubernetes.Clientset
	cachedConfig *rest.Config
	clientErr    error
)

// GetKubeClient returns a shared client built from the default kubeconfig
// discovery on first use.
func GetKubeClient() (*kubernetes.Clientset, *rest.Config, error) {
	clientOnce.Do(func() {
		cachedClient, cachedConfig, clientErr = BuildKubeClient("")
	})
	return cachedClient, cachedConfig, clientErr
}

// ClientFor returns the shared client when kubeconfig is empty and a new
// client for kubeconfig otherwise.
func ClientFor(kubeconfig string) (kubernetes.Interface, *rest.Config, error) {
	if kubeconfig == "" {
		return GetKubeClient()
	}
	return BuildKubeClient(kubeconfig)
}

// BuildKubeClient creates a client from kubeconfig. An empty path resolves,
// in order, $KUBECONFIG, ~/.kube/config and the in-cluster service account.
func BuildKubeClient(kubeconfig string) (*kubernetes.Clientset, *rest.Config, error) {
	kubeconfig = resolveKubeconfig(kubeconfig)
	slog.Debug("building kubernetes client", "kubeconfig", kubeconfig)

	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build kube config: %w", err)
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, config, nil
}

func resolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv(EnvKubeconfig); env != "" {
		return env
	}
	path := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(path); err != nil {
		// in-cluster
		return ""
	}
	return path
}
