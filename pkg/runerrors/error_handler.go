package runerrors

// Códigos de erro do pipeline
const (
	// Erros de leitura do arquivo de entrada (fatais)
	ErrFileNotFound = "FILE_001" // Arquivo de vendas ausente ou ilegível
	ErrFileEncoding = "FILE_002" // Codificação do arquivo não suportada

	// Erros de validação de linha (não fatais, linha descartada)
	ErrRowFieldCount = "VAL_001" // Quantidade de campos inválida
	ErrRowBadValue   = "VAL_002" // Campo numérico ou data inválida

	// Erros de enriquecimento (não fatais, placeholder substituído)
	ErrProductNotFound = "ENR_001" // Produto não encontrado no catálogo
	ErrCatalogFailure  = "ENR_002" // Falha de comunicação com o catálogo

	// Erros de escrita da saída (fatais)
	ErrOutputUnwritable = "OUT_001" // Diretório ou arquivo de saída não gravável
)

// Mapeamento de códigos de erro para o status de saída do processo
var exitStatusMap = map[string]int{
	ErrFileNotFound:     1,
	ErrFileEncoding:     1,
	ErrOutputUnwritable: 1,
}

// PipelineError representa um erro padronizado do pipeline
type PipelineError struct {
	Code    string `json:"code"`              // Código de erro
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Err     error  `json:"-"`                 // Erro de origem (opcional)
}

func (e *PipelineError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// New cria um erro de pipeline com código e mensagem
func New(code string, message string) *PipelineError {
	return &PipelineError{Code: code, Message: message}
}

// FromError envolve um erro Go existente em um erro de pipeline
func FromError(err error, code string) *PipelineError {
	if err == nil {
		return &PipelineError{Code: code, Message: "erro desconhecido"}
	}

	return &PipelineError{Code: code, Message: err.Error(), Err: err}
}

// IsFatal indica se o código de erro deve abortar a execução
func IsFatal(code string) bool {
	_, exists := exitStatusMap[code]
	return exists
}

// ExitStatus retorna o status de saída do processo para um erro.
// Erros sem mapeamento são tratados como fatais genéricos.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}

	if pErr, ok := err.(*PipelineError); ok {
		if status, exists := exitStatusMap[pErr.Code]; exists {
			return status
		}
	}

	return 1
}
