package fixture

// Authored fixture content. Each literal is fixed at authoring time so that
// a generated workspace is byte-identical between runs; only the workspace
// path differs. The JSON and SVG fixtures must stay valid in their own
// formats — Validate re-checks this after writing.

const pythonSource = `#!/usr/bin/env python3
def fibonacci(n):
    """Return the n-th Fibonacci number."""
    if n <= 1:
        return n
    return fibonacci(n - 1) + fibonacci(n - 2)

if __name__ == "__main__":
    for i in range(10):
        print(f"fib({i}) = {fibonacci(i)}")
`

const rustSource = `//! Sample program exercising struct and collection reads.

use std::collections::HashMap;

/// A registered user.
#[derive(Debug, Clone)]
pub struct User {
    pub id: u64,
    pub name: String,
    pub email: String,
}

impl User {
    /// Creates a new user record.
    pub fn new(id: u64, name: String, email: String) -> Self {
        Self { id, name, email }
    }
}

fn main() {
    let mut users = HashMap::new();
    users.insert(1, User::new(1, "Alice".to_string(), "alice@example.com".to_string()));
    users.insert(2, User::new(2, "Bob".to_string(), "bob@example.com".to_string()));

    println!("Registered users:");
    for (id, user) in &users {
        println!("  {}: {} <{}>", id, user.name, user.email);
    }
}
`

const readerConfigJSON = `{
  "app_name": "Multimodal Read Probe",
  "version": "1.0.0",
  "features": {
    "image_analysis": true,
    "pdf_processing": true,
    "svg_rendering": true,
    "notebook_analysis": true
  },
  "supported_formats": [
    "png", "jpg", "jpeg", "gif", "webp",
    "pdf", "svg", "ipynb",
    "py", "rs", "js", "ts", "json", "yaml", "md"
  ]
}
`

const svgDiagram = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="200" height="200" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="grad1" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:rgb(255,255,0);stop-opacity:1" />
      <stop offset="100%" style="stop-color:rgb(255,0,0);stop-opacity:1" />
    </linearGradient>
  </defs>

  <!-- background -->
  <rect width="200" height="200" fill="url(#grad1)" />

  <!-- circle -->
  <circle cx="100" cy="100" r="50" fill="blue" opacity="0.7" />

  <!-- label -->
  <text x="100" y="105" font-family="Arial" font-size="16" fill="white" text-anchor="middle">
    AI Analysis
  </text>

  <!-- arrow -->
  <path d="M 50 150 L 100 120 L 150 150" stroke="black" stroke-width="3" fill="none" />
  <polygon points="100,115 105,125 95,125" fill="black" />
</svg>
`

const notebookJSON = `{
  "cells": [
    {
      "cell_type": "markdown",
      "metadata": {},
      "source": [
        "# Data analysis example\n",
        "\n",
        "This notebook demonstrates the multimodal analysis features.\n"
      ]
    },
    {
      "cell_type": "code",
      "execution_count": 1,
      "metadata": {},
      "outputs": [
        {
          "name": "stdout",
          "output_type": "stream",
          "text": [
            "Data loaded\n",
            "Sample count: 1000\n"
          ]
        }
      ],
      "source": [
        "import pandas as pd\n",
        "import numpy as np\n",
        "\n",
        "np.random.seed(42)\n",
        "data = pd.DataFrame({\n",
        "    'x': np.random.randn(1000),\n",
        "    'y': np.random.randn(1000) * 2 + 1\n",
        "})\n",
        "\n",
        "print(\"Data loaded\")\n",
        "print(f\"Sample count: {len(data)}\")"
      ]
    },
    {
      "cell_type": "code",
      "execution_count": 2,
      "metadata": {},
      "outputs": [],
      "source": [
        "import matplotlib.pyplot as plt\n",
        "\n",
        "plt.figure(figsize=(10, 6))\n",
        "plt.scatter(data['x'], data['y'], alpha=0.6)\n",
        "plt.xlabel('x value')\n",
        "plt.ylabel('y value')\n",
        "plt.title('Scatter plot')\n",
        "plt.grid(True, alpha=0.3)\n",
        "plt.show()"
      ]
    }
  ],
  "metadata": {
    "kernelspec": {
      "display_name": "Python 3",
      "language": "python",
      "name": "python3"
    },
    "language_info": {
      "name": "python",
      "version": "3.8.5"
    }
  },
  "nbformat": 4,
  "nbformat_minor": 4
}
`

const markdownNotes = `# Fixture workspace

The files in this directory are generated samples for exercising a
multimodal file reader. Each one covers a different format family:

- source code (example.py, example.rs)
- structured configuration (config.json)
- vector graphics (diagram.svg)
- computational notebook (analysis.ipynb)

The workspace is safe to delete once you are done inspecting it.
`
