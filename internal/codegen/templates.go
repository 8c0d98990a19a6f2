package codegen

// builtinTemplates maps each supported intent to its snippet template. The
// snippets mirror the workflows the intent matcher recognizes.
var builtinTemplates = map[string]string{
	"data_processing": `import pandas as pd
from typing import Optional

def process_data(file_path: str = "{{.FilePath}}") -> pd.DataFrame:
    """Process data file with cleaning and transformation."""
    df = pd.read_csv(file_path)
    print(f"Loaded {len(df)} rows")

    # Remove nulls first
    df = df.dropna()

{{if .HasClean}}    # Clean data
    df = df[df['value'] > 0]
    df['column'] = df['column'].str.strip()

{{end}}{{if .HasXform}}    # Transform data
    df['date'] = pd.to_datetime(df['date'])
    df['processed_at'] = pd.Timestamp.now()

{{end}}    print(f"Processed {len(df)} rows")
    return df

if __name__ == "__main__":
    df = process_data()
    print(df.head())
`,

	"data_loading": `import pandas as pd

def load_data(file_path: str = "{{.FilePath}}") -> pd.DataFrame:
    """Load data from {{.FileType}} file."""
    try:
        df = {{.Loader}}(file_path)
        print(f"Loaded {len(df)} rows, {len(df.columns)} columns")
        print(f"Columns: {list(df.columns)}")
        return df
    except Exception as e:
        print(f"Error loading data: {e}")
        raise

df = load_data()
print(df.head())
`,

	"data_analysis": `import pandas as pd
import matplotlib.pyplot as plt
import seaborn as sns

def analyze_data(df: pd.DataFrame) -> None:
    """Comprehensive data analysis."""
    print(df.describe())
    print("Missing Values:")
    print(df.isnull().sum())

    numeric_cols = df.select_dtypes(include=['number']).columns
    if len(numeric_cols) > 1:
        print(df[numeric_cols].corr())
        plt.figure(figsize=(10, 8))
        sns.heatmap(df[numeric_cols].corr(), annot=True, cmap='coolwarm')
        plt.title('Correlation Matrix')
        plt.tight_layout()
        plt.savefig('correlation_matrix.png')

    for col in numeric_cols:
        plt.figure()
        df[col].hist(bins=30)
        plt.title(f'Distribution of {col}')
        plt.savefig(f'{col}_distribution.png')

analyze_data(df)
`,

	"api_request": `import requests
from typing import Dict, Optional
import json

def make_api_request(
    url: str = "{{.URL}}",
    params: Optional[Dict] = None,
    headers: Optional[Dict] = None
) -> Dict:
    """Make API request with error handling."""
{{if .Auth}}    if not headers:
        headers = {}
    headers['Authorization'] = 'Bearer YOUR_API_KEY'

{{end}}    try:
        response = requests.get(url, params=params, headers=headers, timeout=30)
        response.raise_for_status()
        data = response.json()
        print(f"Success! Got {len(data)} items")
        return data
    except requests.exceptions.RequestException as e:
        print(f"API request failed: {e}")
        raise

data = make_api_request()
print(json.dumps(data, indent=2))
`,

	"api_post": `import requests
import json
from typing import Dict

def post_data(url: str = "{{.URL}}", data: Dict = None) -> Dict:
    """POST data to API endpoint."""
    if data is None:
        data = {"key": "value"}

    headers = {'Content-Type': 'application/json'}
    try:
        response = requests.post(url, json=data, headers=headers, timeout=30)
        response.raise_for_status()
        result = response.json()
        print(f"Success! Response: {result}")
        return result
    except requests.exceptions.RequestException as e:
        print(f"POST failed: {e}")
        raise

result = post_data()
`,

	"file_creation": `{{if .JSONStyle}}import json

def save_json(data: dict, filename: str = "{{.Filename}}"):
    """Save data to JSON file."""
    with open(filename, 'w') as f:
        json.dump(data, f, indent=2)
    print(f"Saved to {filename}")

data = {"key": "value", "items": [1, 2, 3]}
save_json(data)
{{else}}def save_file(content: str, filename: str = "{{.Filename}}"):
    """Save content to file."""
    with open(filename, 'w') as f:
        f.write(content)
    print(f"Saved to {filename}")

content = "Your content here"
save_file(content)
{{end}}`,

	"file_manipulation": `import shutil
from pathlib import Path

def copy_file(src: str, dest: str):
    """Copy file from src to dest."""
    shutil.copy2(src, dest)
    print(f"Copied {src} to {dest}")

def move_file(src: str, dest: str):
    """Move file from src to dest."""
    shutil.move(src, dest)
    print(f"Moved {src} to {dest}")

def delete_file(path: str):
    """Delete file safely."""
    file_path = Path(path)
    if file_path.exists():
        file_path.unlink()
        print(f"Deleted {path}")
    else:
        print(f"File not found: {path}")
`,

	"code_generation": `def {{.FunctionName}}(param1, param2=None):
    """{{.Description}}"""
    result = param1
    if param2 is not None:
        result += param2
    return result

if __name__ == "__main__":
    result = {{.FunctionName}}(10, 20)
    print(f"Result: {result}")
`,

	"testing": `import pytest

def test_{{.FunctionName}}():
    """Test {{.FunctionName}} with various inputs."""
    result = {{.FunctionName}}(10, 20)
    assert result == 30

    result = {{.FunctionName}}(0)
    assert result == 0

    result = {{.FunctionName}}(10, None)
    assert result == 10

if __name__ == "__main__":
    test_{{.FunctionName}}()
`,

	"debugging": `import traceback
from typing import Any

def debug_print(var_name: str, value: Any):
    """Debug print with type information."""
    print(f"{var_name} = {value}")
    print(f"Type: {type(value)}")
    if hasattr(value, '__len__'):
        print(f"Length: {len(value)}")

def safe_execute(func, *args, **kwargs):
    """Execute function with detailed error reporting."""
    try:
        return func(*args, **kwargs)
    except Exception as e:
        print(f"{func.__name__} failed: {e}")
        traceback.print_exc()
        return None
`,
}
